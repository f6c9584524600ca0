package catalog

// Seed returns the reference data shipped with the bot: the brands and
// first-word model names offered during registration, plus the color
// list. Brand and model order is what the condo administration curates,
// so it is kept stable here.
func Seed() *Catalog {
	brands := []Brand{
		{Name: "Chevrolet", Models: []string{"Onix", "Prisma", "Tracker", "S10", "Spin", "Cruze", "Celta", "Corsa"}},
		{Name: "Citroen", Models: []string{"C3", "C4", "Aircross"}},
		{Name: "Fiat", Models: []string{"Argo", "Mobi", "Uno", "Palio", "Strada", "Toro", "Cronos", "Siena"}},
		{Name: "Ford", Models: []string{"Ka", "Fiesta", "EcoSport", "Ranger", "Focus", "Fusion"}},
		{Name: "Honda", Models: []string{"Civic", "Fit", "City", "HR-V", "CR-V"}},
		{Name: "Hyundai", Models: []string{"HB20", "Creta", "Tucson", "ix35"}},
		{Name: "Jeep", Models: []string{"Renegade", "Compass", "Commander"}},
		{Name: "Nissan", Models: []string{"Kicks", "Versa", "March", "Sentra", "Frontier"}},
		{Name: "Peugeot", Models: []string{"208", "2008", "3008", "Partner"}},
		{Name: "Renault", Models: []string{"Kwid", "Sandero", "Logan", "Duster", "Captur", "Oroch"}},
		{Name: "Toyota", Models: []string{"Corolla", "Etios", "Hilux", "Yaris", "RAV4", "SW4"}},
		{Name: "Volkswagen", Models: []string{"Gol", "Polo", "Virtus", "T-Cross", "Saveiro", "Voyage", "Fox", "Jetta", "Nivus"}},
		{Name: "Outra", Models: []string{"Outro"}},
	}

	colors := []string{
		"Preto", "Chumbo", "Cinza", "Prata", "Branco", "Bege",
		"Amarelo", "Vermelho", "Azul", "Verde", "Outra",
	}

	return New(brands, colors)
}
