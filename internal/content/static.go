// Package content holds the agency's built-in catalog. It is the default
// content store when no database is configured, and the seed source for
// cmd/seeder when no remote feed is configured.
package content

import "saly_tourisme/internal/domain"

func strPtr(s string) *string { return &s }

// Static returns a fresh copy of the built-in catalog on every call.
func Static() domain.Catalog {
	return domain.Catalog{
		Hotels:       hotels(),
		Activities:   activities(),
		Packages:     packages(),
		Testimonials: testimonials(),
	}
}

func hotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:          1,
			Name:        "Hôtel Les Filaos",
			Type:        domain.HotelTypeHotel,
			Stars:       4,
			Price:       85000,
			Image:       "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800&q=80",
			Location:    "Saly Portudal",
			Description: "Niché au cœur de Saly entre cocotiers et filaos, cet hôtel de charme offre un accès direct à une plage de sable blanc immaculée. Architecture sénégalaise authentique et service de qualité supérieure.",
			Amenities:   []string{"Piscine", "Spa", "Restaurant", "Bar", "WiFi", "Plage privée"},
			Rating:      4.7,
			Reviews:     234,
			Featured:    true,
		},
		{
			ID:          2,
			Name:        "Royal Saly Resort",
			Type:        domain.HotelTypeHotel,
			Stars:       5,
			Price:       145000,
			Image:       "https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?w=800&q=80",
			Location:    "Saly Nord",
			Description: "Le fleuron de l'hôtellerie à Saly. Suites panoramiques face à l'Atlantique, gastronomie internationale et spa de luxe. Une expérience hors du commun pour les voyageurs exigeants.",
			Amenities:   []string{"Piscine infinity", "Spa premium", "3 restaurants", "Tennis", "Plongée", "Concierge"},
			Rating:      4.9,
			Reviews:     189,
			Featured:    true,
		},
		{
			ID:          3,
			Name:        "Lamantin Beach Hotel",
			Type:        domain.HotelTypeHotel,
			Stars:       5,
			Price:       165000,
			Image:       "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&q=80",
			Location:    "Saly Centre",
			Description: "Hôtel iconique de l'Afrique de l'Ouest, le Lamantin allie architecture coloniale et confort moderne. Ses jardins luxuriants s'étendent jusqu'à la mer dans un écrin de verdure tropicale.",
			Amenities:   []string{"2 piscines", "Spa", "Golf 9 trous", "4 restaurants", "Plage", "Animation"},
			Rating:      4.8,
			Reviews:     412,
			Featured:    true,
		},
		{
			ID:          4,
			Name:        "Résidence Saly Bay",
			Type:        domain.HotelTypeResidence,
			Stars:       3,
			Price:       55000,
			Image:       "https://images.unsplash.com/photo-1540541338287-41700207dee6?w=800&q=80",
			Location:    "Saly Est",
			Description: "Résidence idéale pour les familles et les longs séjours. Appartements spacieux avec cuisine équipée, à 200m de la plage. Calme et authenticité assurés.",
			Amenities:   []string{"Cuisine équipée", "Piscine", "Gardiennage", "Parking", "WiFi"},
			Rating:      4.3,
			Reviews:     98,
		},
		{
			ID:          5,
			Name:        "Villa Baobab",
			Type:        domain.HotelTypeVilla,
			Stars:       4,
			Price:       120000,
			Image:       "https://images.unsplash.com/photo-1613977257363-707ba9348227?w=800&q=80",
			Location:    "Saly Portudal",
			Description: "Villa privée avec jardin tropical et piscine, idéale pour les groupes. 4 chambres climatisées, personnel de maison inclus, 500m de la plage de Saly.",
			Amenities:   []string{"Piscine privée", "Chef cuisinier", "Jardin tropical", "Voiture avec chauffeur", "WiFi"},
			Rating:      4.6,
			Reviews:     67,
		},
		{
			ID:          6,
			Name:        "Lodge Ocean Bleu",
			Type:        domain.HotelTypeHotel,
			Stars:       3,
			Price:       42000,
			Image:       "https://images.unsplash.com/photo-1584132967334-10e028bd69f7?w=800&q=80",
			Location:    "Saly Sud",
			Description: "Petit lodge accueillant dans une ambiance familiale chaleureuse. Chambres confortables, cuisine locale excellente et guides touristiques disponibles à toute heure.",
			Amenities:   []string{"Restaurant local", "Guide touristique", "Location de vélos", "WiFi", "Terrasse"},
			Rating:      4.2,
			Reviews:     143,
		},
	}
}

func activities() []domain.Activity {
	return []domain.Activity{
		{
			ID:          1,
			Name:        "Pêche Sportive en Mer",
			Category:    domain.CategoryNautique,
			Price:       45000,
			Image:       "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800&q=80",
			Duration:    "Journée (8h)",
			Description: "Embarquez sur un bateau de pêche traditionnel piroguer et partez à la conquête des eaux de l'Atlantique. Barracudas, thons et dorades — le large vous réserve de belles surprises.",
			Includes:    []string{"Guide professionnel", "Matériel de pêche", "Déjeuner bord", "Boissons"},
			Difficulty:  domain.DifficultyModerate,
			Featured:    true,
		},
		{
			ID:          2,
			Name:        "Excursion Îles du Saloum",
			Category:    domain.CategoryNature,
			Price:       35000,
			Image:       "https://images.unsplash.com/photo-1547036967-23d11aacaee0?w=800&q=80",
			Duration:    "1 journée",
			Description: "Découvrez le Delta du Saloum, classé au patrimoine mondial de l'UNESCO. Mangroves, oiseaux migrateurs et villages de pêcheurs authentiques dans un décor de rêve.",
			Includes:    []string{"Transport en pirogue", "Guide ornithologue", "Déjeuner dans un village", "Masques et tuba"},
			Difficulty:  domain.DifficultyEasy,
			Featured:    true,
		},
		{
			ID:          3,
			Name:        "Safari Parc de Bandia",
			Category:    domain.CategoryNature,
			Price:       28000,
			Image:       "https://images.unsplash.com/photo-1516426122078-c23e76319801?w=800&q=80",
			Duration:    "Demi-journée (5h)",
			Description: "À 35 km de Saly, le Parc de Bandia abrite rhinocéros, girafes, zèbres et buffles dans un écrin naturel de 3500 hectares. Safari en 4x4 avec guide expert.",
			Includes:    []string{"Transport aller-retour", "Guide safari", "4x4 tout-terrain", "Photos souvenirs"},
			Difficulty:  domain.DifficultyEasy,
			Featured:    true,
		},
		{
			ID:          4,
			Name:        "Kitesurf à Saly",
			Category:    domain.CategoryNautique,
			Price:       32000,
			Image:       "https://images.unsplash.com/photo-1502680390469-be75c86b636f?w=800&q=80",
			Duration:    "3 heures",
			Description: "Les vents constants de Saly en font un paradis pour les amateurs de kitesurf. Cours pour débutants ou sessions libres pour confirmés avec instructeurs certifiés.",
			Includes:    []string{"Matériel complet", "Instructeur certifié", "Assurance", "Photos/vidéos"},
			Difficulty:  domain.DifficultyModerate,
		},
		{
			ID:          5,
			Name:        "Visite Culturelle Dakar",
			Category:    domain.CategoryCulturel,
			Price:       22000,
			Image:       "https://images.unsplash.com/photo-1612892483236-52d32a0e0ac1?w=800&q=80",
			Duration:    "Journée",
			Description: "Découvrez Dakar, ville aux mille visages. Île de Gorée, marché Sandaga, monuments historiques et gastronomie locale — une immersion dans la culture sénégalaise.",
			Includes:    []string{"Transport climatisé", "Guide bilingue", "Entrées monuments", "Déjeuner"},
			Difficulty:  domain.DifficultyEasy,
		},
		{
			ID:          6,
			Name:        "Quad & 4x4 en Brousse",
			Category:    domain.CategoryAventure,
			Price:       38000,
			Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&q=80",
			Duration:    "4 heures",
			Description: "Explorez les pistes sauvages autour de Saly en quad ou 4x4. Villages traditionnels, marigots et paysages de savane — une aventure inoubliable hors des sentiers battus.",
			Includes:    []string{"Quad ou 4x4", "Casque et équipement", "Guide local", "Jus de fruits frais"},
			Difficulty:  domain.DifficultyModerate,
		},
	}
}

func packages() []domain.Package {
	return []domain.Package{
		{
			ID:          1,
			Name:        "Séjour Romantique 7 Nuits",
			Type:        domain.PackageRomantic,
			Price:       890000,
			Image:       "https://images.unsplash.com/photo-1540555700478-4be289fbecef?w=800&q=80",
			Duration:    "7 nuits / 8 jours",
			Persons:     "2 personnes",
			Description: "Offrez-vous une escapade inoubliable avec votre partenaire. Chambre vue mer, dîner aux chandelles sur la plage, spa en duo et excursion en pirogue au coucher du soleil.",
			Includes: []string{
				"Vol aller-retour Paris-Dakar",
				"7 nuits en hôtel 5★",
				"Pension complète",
				"Transferts VIP",
				"Spa en duo (2h)",
				"Dîner romantique plage",
				"Excursion coucher soleil",
			},
			Featured: true,
			Badge:    strPtr("Coup de cœur"),
		},
		{
			ID:          2,
			Name:        "Week-end Famille Tout Compris",
			Type:        domain.PackageFamily,
			Price:       520000,
			Image:       "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=800&q=80",
			Duration:    "4 nuits / 5 jours",
			Persons:     "2 adultes + 2 enfants",
			Description: "Un séjour parfait pour toute la famille. Club enfants, activités aquatiques, animation en soirée et cuisine variée pour tous les goûts dans un cadre sécurisé.",
			Includes: []string{
				"Hébergement 4★ tout compris",
				"Club enfants 4-12 ans",
				"Activités aquatiques illimitées",
				"Animation quotidienne",
				"Transferts aéroport",
				"Excursion Parc Bandia",
			},
			Featured: true,
			Badge:    strPtr("Best-seller"),
		},
		{
			ID:          3,
			Name:        "Circuit Découverte Sénégal",
			Type:        domain.PackageAdventure,
			Price:       750000,
			Image:       "https://images.unsplash.com/photo-1489392191049-fc10c97e64b6?w=800&q=80",
			Duration:    "10 nuits / 11 jours",
			Persons:     "Par personne",
			Description: "Le tour complet du Sénégal : Dakar, Gorée, Lac Rose, Casamance, Saint-Louis et Saly. Rencontres authentiques, paysages variés et expériences culinaires mémorables.",
			Includes: []string{
				"10 nuits en hôtels sélectionnés",
				"Transport en minibus climatisé",
				"Guide francophone expert",
				"Tous les repas",
				"Entrées sites touristiques",
				"Vols intérieurs Dakar-Ziguinchor",
			},
			Featured: true,
		},
		{
			ID:          4,
			Name:        "Lune de Miel Prestige",
			Type:        domain.PackageLuxury,
			Price:       1450000,
			Image:       "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800&q=80",
			Duration:    "10 nuits / 11 jours",
			Persons:     "2 personnes",
			Description: "Le forfait ultime pour les mariés. Suite de luxe avec piscine privée, butler personnel, expériences gastronomiques exclusives et des souvenirs qui dureront toujours.",
			Includes: []string{
				"Suite avec piscine privée",
				"Butler personnel 24h/24",
				"Dîners gastronomiques privés",
				"Spa illimité",
				"Transferts en voiture de luxe",
				"Champagne à l'arrivée",
				"Séance photo professionnelle",
			},
			Badge: strPtr("Luxe"),
		},
	}
}

func testimonials() []domain.Testimonial {
	return []domain.Testimonial{
		{
			ID:      1,
			Name:    "Marie-Claire Dupont",
			Country: "France",
			Avatar:  "https://i.pravatar.cc/80?img=47",
			Rating:  5,
			Comment: "Un voyage absolument magnifique ! L'équipe de Saly Tourisme nous a accompagnés avec professionnalisme du début à la fin. La plage de Saly est un paradis et les excursions proposées étaient toutes exceptionnelles.",
			Date:    "Janvier 2026",
		},
		{
			ID:      2,
			Name:    "Amadou Diallo",
			Country: "Sénégal",
			Avatar:  "https://i.pravatar.cc/80?img=12",
			Rating:  5,
			Comment: "J'ai réservé le forfait famille pour les fêtes. Mes enfants ont adoré le club et les activités aquatiques. Le Royal Saly Resort est un hôtel de très haute qualité. Je recommande vivement !",
			Date:    "Décembre 2025",
		},
		{
			ID:      3,
			Name:    "Sarah Johnson",
			Country: "Royaume-Uni",
			Avatar:  "https://i.pravatar.cc/80?img=32",
			Rating:  5,
			Comment: "Saly Tourisme made our honeymoon absolutely perfect. The romantic package exceeded all our expectations. The sunset pirogue excursion was magical. We will definitely come back!",
			Date:    "Novembre 2025",
		},
		{
			ID:      4,
			Name:    "Pierre-Antoine Lebrun",
			Country: "Belgique",
			Avatar:  "https://i.pravatar.cc/80?img=57",
			Rating:  4,
			Comment: "Le circuit découverte Sénégal était une révélation. 11 jours à explorer ce pays magnifique avec un guide exceptionnel. La Casamance est à couper le souffle. Merci à toute l'équipe !",
			Date:    "Octobre 2025",
		},
	}
}
