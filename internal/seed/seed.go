// Package seed holds the bundled dataset used to initialize any collection
// that has never been persisted. Each function returns a fresh value so
// callers can mutate the result freely.
package seed

import (
	"time"

	"github.com/leguidebj/agency-backend/internal/domain"
)

// Tours returns the bundled tour catalog: three published circuits and one
// draft.
func Tours() []domain.Tour {
	return []domain.Tour{
		{
			ID:          "1",
			Title:       "Aventure à Ganvié",
			Description: "Découvrez la vie sur l'eau dans la plus grande cité lacustre d'Afrique. Une expérience culturelle inoubliable.",
			Price:       450,
			Duration:    "3 jours",
			ImageURL:    "https://picsum.photos/seed/ganvie/600/400",
			Status:      domain.StatusPublished,
			Category:    "Culture",
			Itinerary: []domain.ItineraryDay{
				{Day: 1, Title: "Arrivée et immersion", Description: "Arrivée à Ganvié, installation dans votre bungalow sur pilotis. Première exploration en barque du village et du marché flottant."},
				{Day: 2, Title: "Vie locale et traditions", Description: "Visite d'une école locale, rencontre avec les pêcheurs et découverte des techniques de pêche traditionnelles. Dîner chez l'habitant."},
				{Day: 3, Title: "Détente et départ", Description: "Matinée libre pour vous imprégner de l'atmosphère unique. Retour vers Cotonou en début d'après-midi."},
			},
			Gallery:  []string{"https://picsum.photos/seed/ganvie-g1/800/600", "https://picsum.photos/seed/ganvie-g2/800/600", "https://picsum.photos/seed/ganvie-g3/800/600"},
			Included: []string{"Hébergement en bungalow", "Tous les repas mentionnés", "Transports en barque", "Guide local francophone"},
			Excluded: []string{"Boissons", "Dépenses personnelles", "Pourboires"},
			Tags:     []string{"Culture", "Insolite", "Lac"},
		},
		{
			ID:          "2",
			Title:       "Royaumes d'Abomey",
			Description: "Plongez dans l'histoire des puissants rois du Dahomey en visitant les palais royaux classés au patrimoine mondial de l'UNESCO.",
			Price:       600,
			Duration:    "5 jours",
			ImageURL:    "https://picsum.photos/seed/abomey/600/400",
			Status:      domain.StatusPublished,
			Category:    "Histoire",
			Itinerary: []domain.ItineraryDay{
				{Day: 1, Title: "Route vers Abomey", Description: "Départ de Cotonou, visite du village souterrain d'Agongointo-Zoungoudo en chemin. Arrivée et installation à Abomey."},
				{Day: 2, Title: "Palais Royaux", Description: "Journée consacrée à la visite des palais royaux, classés UNESCO. Découverte de l'histoire, des bas-reliefs et des trônes."},
				{Day: 3, Title: "Artisanat local", Description: "Rencontre avec des artisans locaux : forgerons, tisserands et sculpteurs sur bois. Atelier participatif."},
				{Day: 4, Title: "Culture et Vaudou", Description: "Exploration des temples et couvents vaudou de la région pour comprendre cette spiritualité profonde."},
				{Day: 5, Title: "Retour vers la côte", Description: "Matinée libre pour les derniers achats au marché artisanal, puis retour vers Cotonou."},
			},
			Gallery:  []string{"https://picsum.photos/seed/abomey-g1/800/600", "https://picsum.photos/seed/abomey-g2/800/600"},
			Included: []string{"Hébergement en hôtel", "Petits-déjeuners", "Entrées des sites", "Guide historien"},
			Excluded: []string{"Déjeuners et dîners", "Boissons", "Transports inter-villes"},
			Tags:     []string{"Histoire", "UNESCO", "Royauté"},
		},
		{
			ID:          "3",
			Title:       "Safari au Parc Pendjari",
			Description: "Observez la faune sauvage africaine dans son habitat naturel. Éléphants, lions, guépards vous attendent.",
			Price:       1200,
			Duration:    "7 jours",
			ImageURL:    "https://picsum.photos/seed/pendjari/600/400",
			Status:      domain.StatusPublished,
			Category:    "Safari",
			Itinerary: []domain.ItineraryDay{
				{Day: 1, Title: "En route pour le Nord", Description: "Vol matinal de Cotonou à Natitingou. Transfert vers le parc et installation au lodge."},
				{Day: 2, Title: "Premiers safaris", Description: "Safari matinal et crépusculaire pour observer les animaux à leur pic d'activité."},
				{Day: 3, Title: "Au cœur du parc", Description: "Journée complète de safari avec pique-nique en brousse. Recherche des grands prédateurs."},
				{Day: 4, Title: "Chutes de Tanougou", Description: "Excursion vers les rafraîchissantes chutes de Tanougou pour une baignade."},
				{Day: 5, Title: "Pays Somba", Description: "Visite des villages Somba et de leurs \"tata\", des habitations fortifiées uniques."},
				{Day: 6, Title: "Dernier safari", Description: "Un dernier safari matinal pour dire au revoir à la faune de Pendjari."},
				{Day: 7, Title: "Retour", Description: "Route vers Natitingou pour le vol de retour vers Cotonou."},
			},
			Gallery:  []string{"https://picsum.photos/seed/pendjari-g1/800/600", "https://picsum.photos/seed/pendjari-g2/800/600", "https://picsum.photos/seed/pendjari-g3/800/600", "https://picsum.photos/seed/pendjari-g4/800/600"},
			Included: []string{"Vols internes", "Hébergement en lodge", "Pension complète", "Véhicule 4x4 avec chauffeur-guide"},
			Excluded: []string{"Boissons alcoolisées", "Pourboires"},
			Tags:     []string{"Safari", "Nature", "Animaux", "Aventure"},
		},
		{
			ID:          "4",
			Title:       "Porto-Novo la Capitale",
			Description: "Explorez la capitale colorée du Bénin, avec son architecture afro-brésilienne unique et ses marchés animés.",
			Price:       350,
			Duration:    "2 jours",
			ImageURL:    "https://picsum.photos/seed/porto-novo/600/400",
			Status:      domain.StatusDraft,
			Category:    "Culture",
			Itinerary:   []domain.ItineraryDay{},
			Gallery:     []string{},
			Included:    []string{},
			Excluded:    []string{},
			Tags:        []string{"Culture", "Ville"},
		},
	}
}

// Bookings returns sample booking requests with dates relative to now,
// newest first.
func Bookings(now time.Time) []domain.Booking {
	return []domain.Booking{
		{ID: "b1", TourID: "3", TourTitle: "Safari au Parc Pendjari", CustomerName: "Alice Martin", CustomerEmail: "alice@example.com", CustomerPhone: "0123456789", NumberOfPeople: 2, BookingDate: now, Status: domain.BookingConfirmed},
		{ID: "b2", TourID: "1", TourTitle: "Aventure à Ganvié", CustomerName: "John Doe", CustomerEmail: "john@example.com", CustomerPhone: "0987654321", NumberOfPeople: 4, BookingDate: now.AddDate(0, 0, -2), Status: domain.BookingConfirmed},
		{ID: "b3", TourID: "2", TourTitle: "Royaumes d'Abomey", CustomerName: "Jane Smith", CustomerEmail: "jane@example.com", CustomerPhone: "1122334455", NumberOfPeople: 1, BookingDate: now.AddDate(0, 0, -5), Status: domain.BookingPending},
	}
}

// Messages returns the sample contact-form inbox.
func Messages(now time.Time) []domain.Message {
	return []domain.Message{
		{ID: "m1", Name: "Bob Dupont", Email: "bob@example.com", Subject: "Question sur le circuit Abomey", Message: "Bonjour, j'aimerais avoir plus d'informations sur les hébergements.", Date: now, Read: false},
	}
}

// Testimonials returns the bundled reviews; all approved except one pending.
func Testimonials() []domain.Testimonial {
	return []domain.Testimonial{
		{ID: "t1", Author: "Claire Dubois", ReviewText: "Un voyage exceptionnel ! L'organisation était parfaite et les guides passionnants. Le Bénin est un pays magnifique.", ImageURL: "https://picsum.photos/seed/claire/100/100", Rating: 5, Status: domain.TestimonialApproved},
		{ID: "t2", Author: "Marc Petit", ReviewText: "Le safari à Pendjari a dépassé toutes nos attentes. Merci au Guide BJ pour ces souvenirs inoubliables.", ImageURL: "https://picsum.photos/seed/marc/100/100", Rating: 5, Status: domain.TestimonialApproved},
		{ID: "t3", Author: "Sophie Durand", ReviewText: "Très belle expérience à Ganvié, même si la météo était un peu capricieuse. Je recommande vivement.", ImageURL: "https://picsum.photos/seed/sophie/100/100", Rating: 4, Status: domain.TestimonialPending},
		{ID: "t4", Author: "Lucas Bernard", ReviewText: "Abomey est un site historique fascinant. Une plongée dans l'histoire du Dahomey.", ImageURL: "https://picsum.photos/seed/lucas/100/100", Rating: 5, Status: domain.TestimonialApproved},
		{ID: "t5", Author: "Emma Leroy", ReviewText: "Les couleurs et l'ambiance de Porto-Novo sont uniques. J'ai adoré !", ImageURL: "https://picsum.photos/seed/emma/100/100", Rating: 4, Status: domain.TestimonialApproved},
		{ID: "t6", Author: "Adrien Moreau", ReviewText: "Organisation impeccable du début à la fin. Bravo Le Guide BJ.", ImageURL: "https://picsum.photos/seed/adrien/100/100", Rating: 5, Status: domain.TestimonialApproved},
		{ID: "t7", Author: "Juliette Girard", ReviewText: "J'ai découvert une culture riche et des gens accueillants. Je reviendrai.", ImageURL: "https://picsum.photos/seed/juliette/100/100", Rating: 5, Status: domain.TestimonialApproved},
		{ID: "t8", Author: "Paul Martin", ReviewText: "Le guide était une vraie encyclopédie vivante. Passionnant.", ImageURL: "https://picsum.photos/seed/paul/100/100", Rating: 5, Status: domain.TestimonialApproved},
		{ID: "t9", Author: "Chloé Garcia", ReviewText: "Une aventure mémorable. Les paysages sont à couper le souffle.", ImageURL: "https://picsum.photos/seed/chloe/100/100", Rating: 4, Status: domain.TestimonialApproved},
		{ID: "t10", Author: "Thomas Robert", ReviewText: "Le circuit était bien équilibré entre culture, nature et détente.", ImageURL: "https://picsum.photos/seed/thomas/100/100", Rating: 5, Status: domain.TestimonialApproved},
		{ID: "t11", Author: "Léa Simon", ReviewText: "Un voyage qui change la perspective. Le Bénin est un trésor.", ImageURL: "https://picsum.photos/seed/lea/100/100", Rating: 5, Status: domain.TestimonialApproved},
		{ID: "t12", Author: "Hugo Lefevre", ReviewText: "Superbe expérience. Le parc Pendjari est un must pour les amoureux de la nature.", ImageURL: "https://picsum.photos/seed/hugo/100/100", Rating: 5, Status: domain.TestimonialApproved},
		{ID: "t13", Author: "Manon Lopez", ReviewText: "Ganvié est magique. On se sent hors du temps.", ImageURL: "https://picsum.photos/seed/manon/100/100", Rating: 4, Status: domain.TestimonialApproved},
	}
}

// BlogPosts returns two published articles and one draft, dated relative to
// now.
func BlogPosts(now time.Time) []domain.BlogPost {
	return []domain.BlogPost{
		{ID: "bp1", Title: "Les secrets de la porte du non-retour", Content: "Un récit poignant sur l'histoire de l'esclavage à Ouidah. Nous explorons la route des esclaves, un chemin chargé d'émotion et de mémoire, jusqu'à la majestueuse Porte du Non-Retour face à l'océan. C'est un pèlerinage essentiel pour comprendre une partie sombre mais cruciale de l'histoire mondiale et béninoise.", ImageURL: "https://picsum.photos/seed/blog-ouidah/800/400", CreatedAt: now.AddDate(0, 0, -5), Status: domain.StatusPublished},
		{ID: "bp2", Title: "Cuisine béninoise : 5 plats à goûter absolument", Content: "La gastronomie béninoise est riche et savoureuse. De l'igname pilée (fufu) à la sauce arachide, en passant par le poisson braisé fraîchement pêché à Cotonou, chaque plat est une découverte. Ne manquez pas de goûter le \"pâté\" local, une pâte de maïs fermentée, accompagnée de sauces relevées. Un régal pour les papilles !", ImageURL: "https://picsum.photos/seed/blog-food/800/400", CreatedAt: now.AddDate(0, 0, -2), Status: domain.StatusPublished},
		{ID: "bp3", Title: "Mon prochain article", Content: "Contenu à venir...", ImageURL: "https://picsum.photos/seed/blog-draft/800/400", CreatedAt: now, Status: domain.StatusDraft},
	}
}

// Experiences returns the destination highlight cards.
func Experiences() []domain.Experience {
	return []domain.Experience{
		{ID: "exp1", Title: "Ouidah, Mémoire et Héritage", Description: "Suivez la Route des Esclaves et découvrez l'histoire poignante de la traite transatlantique à travers ses monuments emblématiques.", ImageURL: "https://picsum.photos/seed/dest-ouidah/600/400", Status: domain.StatusPublished},
		{ID: "exp2", Title: "Le Berceau du Vaudou", Description: "Explorez les origines et les rituels d'une spiritualité authentique, bien loin des clichés, et rencontrez ses dignitaires.", ImageURL: "https://picsum.photos/seed/dest-vodoun/600/400", Status: domain.StatusPublished},
		{ID: "exp3", Title: "Les Châteaux des Tatas Somba", Description: "Admirez l'architecture unique des \"châteaux forts\" en terre du peuple Somba, un témoignage d'ingéniosité et de tradition.", ImageURL: "https://picsum.photos/seed/dest-tata-somba/600/400", Status: domain.StatusPublished},
		{ID: "exp4", Title: "Cotonou, la vibrante", Description: "Découvrez le plus grand marché d'Afrique de l'Ouest, Dantokpa, et l'artisanat local.", ImageURL: "https://picsum.photos/seed/dest-cotonou/600/400", Status: domain.StatusDraft},
	}
}

// HomePage returns the default home page document.
func HomePage() domain.HomePageContent {
	return domain.HomePageContent{
		Hero: domain.Hero{
			Title:    "Tourisme Durable au Cœur du Bénin",
			Subtitle: "Explorez une nature préservée et soutenez les communautés locales.",
			ImageURL: "https://picsum.photos/seed/benin-nature/1600/900",
		},
		Engagement: domain.Engagement{
			Title:    "Notre Engagement Écologique",
			Subtitle: "Nous créons des expériences authentiques et mémorables, en vous connectant à la culture, à l'histoire et à la beauté naturelle du Bénin, de manière responsable.",
			ImageURL: "https://picsum.photos/seed/engagement/800/600",
			Items: []domain.EngagementItem{
				{Icon: "leaf", Title: "Expériences Immersives", Description: "Vivez au plus près de la nature et des traditions locales, loin du tourisme de masse."},
				{Icon: "users", Title: "Soutien Communautaire", Description: "Votre voyage contribue directement à l'économie locale et au bien-être des populations."},
				{Icon: "globe", Title: "Impact Positif Garanti", Description: "Nous nous engageons à minimiser notre empreinte écologique et à protéger la biodiversité."},
			},
		},
		FAQ: domain.FAQ{
			Title:    "Questions Fréquemment Posées",
			Subtitle: "Trouvez les réponses à vos questions les plus courantes sur nos voyages au Bénin.",
			Items: []domain.FAQItem{
				{Question: "Quelle est la meilleure période pour visiter le Bénin ?", Answer: "La meilleure période pour visiter le Bénin est la saison sèche, qui s'étend de novembre à avril. Les températures sont agréables et les pluies sont rares, ce qui est idéal pour les safaris et les visites culturelles."},
				{Question: "Faut-il un visa pour se rendre au Bénin ?", Answer: "Oui, un visa est nécessaire pour la plupart des nationalités. Nous vous recommandons de vérifier les exigences spécifiques auprès de l'ambassade du Bénin dans votre pays. Un visa électronique (e-visa) est souvent disponible."},
				{Question: "Quels vaccins sont recommandés ?", Answer: "Le vaccin contre la fièvre jaune est obligatoire. D'autres vaccins comme l'hépatite A, la typhoïde et un traitement antipaludique sont fortement recommandés. Consultez votre médecin pour des conseils personnalisés."},
			},
		},
	}
}
