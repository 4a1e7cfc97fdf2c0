package inventory

// EmissionFactor converts an activity quantity into emissions.
type EmissionFactor struct {
	ID       string  `json:"id"       yaml:"id"`
	Category string  `json:"category" yaml:"category"`
	Name     string  `json:"name"     yaml:"name"`
	Factor   float64 `json:"factor"   yaml:"factor"`
	Unit     string  `json:"unit"     yaml:"unit"`
	Source   string  `json:"source"   yaml:"source"`
}

//nolint:gochecknoglobals // Read-only reference table.
var factors = [...]EmissionFactor{
	{ID: "F-001", Category: "Combustible Líquido", Name: "Diésel (ACPM)", Factor: 10.15, Unit: "kgCO2e/gal", Source: "UPME 2023"},
	{ID: "F-002", Category: "Combustible Líquido", Name: "Gasolina Corriente", Factor: 8.15, Unit: "kgCO2e/gal", Source: "UPME 2023"},
	{ID: "F-003", Category: "Energía Eléctrica", Name: "SIN Colombia", Factor: 0.136, Unit: "kgCO2/kWh", Source: "UPME-FECOC"},
	{ID: "F-004", Category: "Refrigerante", Name: "R-417B", Factor: 3235, Unit: "kgCO2e/kg", Source: "IPCC AR5"},
	{ID: "F-005", Category: "Material", Name: "Papel Blanco", Factor: 1.84, Unit: "kgCO2/kg", Source: "Defra UK"},
}

// Factors returns the emission factor reference table.
func Factors() []EmissionFactor {
	out := make([]EmissionFactor, len(factors))
	copy(out, factors[:])
	return out
}
