package igdb

type countryEntry struct {
	name   string
	market string
}

// ISO 3166-1 numeric codes the catalog uses for company countries.
var countryMap = map[int]countryEntry{
	840: {"Estados Unidos", "EUA"},
	392: {"Japão", "Asia"},
	156: {"China", "Asia"},
	410: {"Coreia do Sul", "Asia"},
	826: {"Reino Unido", "Europa"},
	250: {"França", "Europa"},
	276: {"Alemanha", "Europa"},
	124: {"Canadá", "America do Norte"},
	752: {"Suécia", "Europa"},
	616: {"Polônia", "Europa"},
	76:  {"Brasil", "América do Sul"},
}

// CountryMarket resolves a numeric country code to a country name and market
// region. An absent code yields no country and the Global market; an unmapped
// code yields "Desconhecido" and Global.
func CountryMarket(code *int) (*string, string) {
	if code == nil || *code == 0 {
		return nil, "Global"
	}
	if entry, ok := countryMap[*code]; ok {
		name := entry.name
		return &name, entry.market
	}
	unknown := "Desconhecido"
	return &unknown, "Global"
}
