package store

import (
	"context"
	"fmt"

	"github.com/leguidebj/agency-backend/internal/domain"
	"github.com/leguidebj/agency-backend/internal/kv"
)

// AddBlogPost stores a new article with a fresh id and creation timestamp,
// prepended so the blog stays newest-first. The caller controls the status
// (draft or published).
func (s *Store) AddBlogPost(ctx context.Context, p domain.BlogPost) (domain.BlogPost, error) {
	if !p.Status.Valid() {
		return domain.BlogPost{}, fmt.Errorf("store.AddBlogPost: %w: invalid status %q", domain.ErrValidation, p.Status)
	}

	s.mu.Lock()
	p.ID = s.newID()
	p.CreatedAt = s.now()
	s.blogPosts = append([]domain.BlogPost{p}, s.blogPosts...)
	kv.Save(ctx, s.kv, s.log, kv.KeyBlogPosts, s.blogPosts)
	s.mu.Unlock()

	s.notify(kv.KeyBlogPosts)
	return p, nil
}

// UpdateBlogPost replaces the stored post matching p.ID, preserving the
// original creation timestamp. Unknown ids are a no-op.
func (s *Store) UpdateBlogPost(ctx context.Context, p domain.BlogPost) error {
	if !p.Status.Valid() {
		return fmt.Errorf("store.UpdateBlogPost: %w: invalid status %q", domain.ErrValidation, p.Status)
	}

	s.mu.Lock()
	changed := false
	for i := range s.blogPosts {
		if s.blogPosts[i].ID == p.ID {
			p.CreatedAt = s.blogPosts[i].CreatedAt
			s.blogPosts[i] = p
			changed = true
			break
		}
	}
	if changed {
		kv.Save(ctx, s.kv, s.log, kv.KeyBlogPosts, s.blogPosts)
	}
	s.mu.Unlock()

	if changed {
		s.notify(kv.KeyBlogPosts)
	}
	return nil
}

// DeleteBlogPost removes the post with the given id; unknown ids are a no-op.
func (s *Store) DeleteBlogPost(ctx context.Context, id string) {
	s.mu.Lock()
	changed := false
	for i := range s.blogPosts {
		if s.blogPosts[i].ID == id {
			s.blogPosts = append(s.blogPosts[:i], s.blogPosts[i+1:]...)
			changed = true
			break
		}
	}
	if changed {
		kv.Save(ctx, s.kv, s.log, kv.KeyBlogPosts, s.blogPosts)
	}
	s.mu.Unlock()

	if changed {
		s.notify(kv.KeyBlogPosts)
	}
}

// AddExperience stores a new destination card with a fresh id, prepended.
func (s *Store) AddExperience(ctx context.Context, e domain.Experience) (domain.Experience, error) {
	if !e.Status.Valid() {
		return domain.Experience{}, fmt.Errorf("store.AddExperience: %w: invalid status %q", domain.ErrValidation, e.Status)
	}

	s.mu.Lock()
	e.ID = s.newID()
	s.experiences = append([]domain.Experience{e}, s.experiences...)
	kv.Save(ctx, s.kv, s.log, kv.KeyExperiences, s.experiences)
	s.mu.Unlock()

	s.notify(kv.KeyExperiences)
	return e, nil
}

// UpdateExperience replaces the stored experience matching e.ID. Unknown ids
// are a no-op.
func (s *Store) UpdateExperience(ctx context.Context, e domain.Experience) error {
	if !e.Status.Valid() {
		return fmt.Errorf("store.UpdateExperience: %w: invalid status %q", domain.ErrValidation, e.Status)
	}

	s.mu.Lock()
	changed := false
	for i := range s.experiences {
		if s.experiences[i].ID == e.ID {
			s.experiences[i] = e
			changed = true
			break
		}
	}
	if changed {
		kv.Save(ctx, s.kv, s.log, kv.KeyExperiences, s.experiences)
	}
	s.mu.Unlock()

	if changed {
		s.notify(kv.KeyExperiences)
	}
	return nil
}

// DeleteExperience removes the experience with the given id; unknown ids are
// a no-op.
func (s *Store) DeleteExperience(ctx context.Context, id string) {
	s.mu.Lock()
	changed := false
	for i := range s.experiences {
		if s.experiences[i].ID == id {
			s.experiences = append(s.experiences[:i], s.experiences[i+1:]...)
			changed = true
			break
		}
	}
	if changed {
		kv.Save(ctx, s.kv, s.log, kv.KeyExperiences, s.experiences)
	}
	s.mu.Unlock()

	if changed {
		s.notify(kv.KeyExperiences)
	}
}
