package catalog

// Fotos de placeholder por especie. No se verifica que resuelvan.
const (
	PhotoCat = "https://placekitten.com/200/200"
	PhotoDog = "https://place-puppy.com/200x200"
)

// DefaultSeed es el catálogo con el que arranca el servicio.
func DefaultSeed() []AnimalRecord {
	return []AnimalRecord{
		{
			ID:       "1",
			Name:     "Rex",
			AgeLabel: "2 anos",
			SexLabel: "Macho",
			Story:    "Um cachorro muito brincalhão que adora correr no parque e brincar com bolinhas. É muito carinhoso e se dá bem com crianças e outros animais.",
			PhotoURL: "https://place-puppy.com/300x300",
		},
		{
			ID:       "2",
			Name:     "Luna",
			AgeLabel: "1 ano",
			SexLabel: "Fêmea",
			Story:    "Gatinha carinhosa que adora dormir no colo e brincar com arranhadores. Muito tranquila e educada, usa perfeitamente a caixinha de areia.",
			PhotoURL: "https://placekitten.com/300/300",
		},
		{
			ID:       "3",
			Name:     "Thor",
			AgeLabel: "3 anos",
			SexLabel: "Macho",
			Story:    "Cachorro de porte médio, muito protetor e leal. Adora longas caminhadas e é muito inteligente, aprende comandos rapidamente.",
			PhotoURL: "https://place-puppy.com/300x300",
		},
	}
}
