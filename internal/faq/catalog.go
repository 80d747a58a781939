// Package faq holds the static FAQ catalog shown in the widget panel.
// The entries are configuration data, fixed at build time.
package faq

type Entry struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

const (
	CategoryServices    = "Servicios"
	CategoryInformation = "Información"
	CategorySales       = "Ventas"
)

var entries = []Entry{
	{
		ID:       "servicios",
		Question: "¿Qué servicios ofrece INGELEAN?",
		Answer:   "Ofrecemos desarrollo de software, automatización industrial, mantenimiento preventivo, hardware y soluciones en IA.",
		Category: CategoryServices,
		Keywords: []string{"servicios", "ofrece", "desarrollo", "software", "automatización"},
	},
	{
		ID:       "ubicacion",
		Question: "¿Dónde están ubicados?",
		Answer:   "Estamos ubicados en Pereira, Risaralda - Colombia.",
		Category: CategoryInformation,
		Keywords: []string{"ubicados", "donde", "dirección", "pereira"},
	},
	{
		ID:       "horarios",
		Question: "¿Cuáles son los horarios de atención?",
		Answer:   "Nuestro horario de atención es de lunes a viernes de 8:00 a.m. a 5:00 p.m.",
		Category: CategoryInformation,
		Keywords: []string{"horario", "atención", "lunes", "viernes"},
	},
	{
		ID:       "cotizacion",
		Question: "¿Cómo solicitar una cotización?",
		Answer:   "Puedes solicitar una cotización escribiéndonos a contacto@ingelean.com o usando nuestro formulario web.",
		Category: CategorySales,
		Keywords: []string{"cotización", "solicitar", "precio", "presupuesto"},
	},
	{
		ID:       "automatizacion",
		Question: "¿Trabajan con automatización industrial?",
		Answer:   "Sí, tenemos experiencia en automatización industrial para empresas del Eje Cafetero.",
		Category: CategoryServices,
		Keywords: []string{"automatización", "industrial", "eje", "cafetero"},
	},
	{
		ID:       "soporte",
		Question: "¿Ofrecen soporte técnico?",
		Answer:   "Ofrecemos soporte técnico tanto presencial como remoto para nuestros clientes.",
		Category: CategoryServices,
		Keywords: []string{"soporte", "técnico", "presencial", "remoto"},
	},
	{
		ID:       "contacto",
		Question: "¿Cómo contactar con ventas?",
		Answer:   "Puedes comunicarte con ventas al correo ventas@ingelean.com o al WhatsApp 300 123 4567.",
		Category: CategorySales,
		Keywords: []string{"ventas", "contactar", "whatsapp", "teléfono"},
	},
	{
		ID:       "empresas",
		Question: "¿Trabajan con empresas pequeñas?",
		Answer:   "Sí, trabajamos con empresas de todos los tamaños, incluyendo startups y pymes.",
		Category: CategoryInformation,
		Keywords: []string{"empresas", "pequeñas", "startups", "pymes"},
	},
}

func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func ByID(id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

func ByCategory(category string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

func Categories() []string {
	return []string{CategoryServices, CategoryInformation, CategorySales}
}
