package repository

// SeedMaterials returns the built-in electrical materials list.
func SeedMaterials() []Material {
	return []Material{
		{ID: "MAT001", Name: "Clipsal Double GPO 10A", SKU: "CL-GPO-10A", BaseCost: 12.50, Category: "Power Points",
			Keywords: []string{"gpo", "outlet", "power point", "clipsal", "double", "socket"}},
		{ID: "MAT002", Name: "LED Downlight 10W Warm White", SKU: "LED-DL-10W", BaseCost: 25.00, Category: "Lighting",
			Keywords: []string{"led", "downlight", "light", "ceiling", "warm", "10w"}},
		{ID: "MAT003", Name: "2.5mm Twin & Earth Cable (per meter)", SKU: "CAB-2.5-TE", BaseCost: 3.50, Category: "Cables",
			Keywords: []string{"cable", "2.5mm", "twin", "earth", "wire", "wiring"}},
		{ID: "MAT004", Name: "20A Circuit Breaker", SKU: "CB-20A", BaseCost: 18.00, Category: "Switchboard",
			Keywords: []string{"breaker", "circuit", "20a", "mcb", "switchboard"}},
		{ID: "MAT005", Name: "4mm Twin & Earth Cable (per meter)", SKU: "CAB-4-TE", BaseCost: 5.50, Category: "Cables",
			Keywords: []string{"cable", "4mm", "twin", "earth", "wire", "heavy"}},
		{ID: "MAT006", Name: "Clipsal Single GPO 10A", SKU: "CL-GPO-S10A", BaseCost: 8.50, Category: "Power Points",
			Keywords: []string{"gpo", "outlet", "power point", "clipsal", "single", "socket"}},
		{ID: "MAT007", Name: "Light Switch Single Gang", SKU: "SW-1G", BaseCost: 6.00, Category: "Switches",
			Keywords: []string{"switch", "light", "single", "gang", "wall"}},
		{ID: "MAT008", Name: "Light Switch Double Gang", SKU: "SW-2G", BaseCost: 9.50, Category: "Switches",
			Keywords: []string{"switch", "light", "double", "gang", "wall", "two"}},
		{ID: "MAT009", Name: "Smoke Detector 240V", SKU: "SD-240V", BaseCost: 35.00, Category: "Safety",
			Keywords: []string{"smoke", "detector", "alarm", "fire", "safety", "240v"}},
		{ID: "MAT010", Name: "Ceiling Fan with Light Kit", SKU: "FAN-CL", BaseCost: 150.00, Category: "Fans",
			Keywords: []string{"fan", "ceiling", "light", "kit", "breeze"}},
		{ID: "MAT011", Name: "RCD Safety Switch 30mA", SKU: "RCD-30MA", BaseCost: 85.00, Category: "Switchboard",
			Keywords: []string{"rcd", "safety", "switch", "30ma", "protection"}},
		{ID: "MAT012", Name: "Weatherproof GPO IP54", SKU: "WP-GPO", BaseCost: 28.00, Category: "Power Points",
			Keywords: []string{"weatherproof", "outdoor", "gpo", "ip54", "external"}},
		{ID: "MAT013", Name: "Electrical Junction Box", SKU: "JB-STD", BaseCost: 4.50, Category: "Accessories",
			Keywords: []string{"junction", "box", "connection", "join"}},
		{ID: "MAT014", Name: "Conduit 20mm (per meter)", SKU: "CON-20MM", BaseCost: 2.00, Category: "Accessories",
			Keywords: []string{"conduit", "pipe", "20mm", "protection"}},
		{ID: "MAT015", Name: "Pool Pump Isolator Switch", SKU: "ISO-POOL", BaseCost: 45.00, Category: "Switches",
			Keywords: []string{"pool", "pump", "isolator", "switch", "outdoor"}},
	}
}
