package rules

import "time"

// Resource identifies one of the six fixed resource kinds a nation ledger tracks.
type Resource string

const (
	ResourceMoney     Resource = "money"
	ResourceFood      Resource = "food"
	ResourceMetal     Resource = "metal"
	ResourceOil       Resource = "oil"
	ResourceEnergy    Resource = "energy"
	ResourceMaterials Resource = "materials"
)

// Resources lists every resource kind in display order.
var Resources = []Resource{
	ResourceMoney,
	ResourceFood,
	ResourceMetal,
	ResourceOil,
	ResourceEnergy,
	ResourceMaterials,
}

// ValidResource reports whether s names a known resource kind.
func ValidResource(s string) bool {
	for _, r := range Resources {
		if string(r) == s {
			return true
		}
	}
	return false
}

// Rules is the full set of economic constants. It is loaded once at startup and
// passed explicitly into every engine call; nothing mutates it afterwards.
//
// A zero cap means "unlimited" so a partial config never bricks the economy.
type Rules struct {
	ProduceDailyCapPerResource int64         `toml:"produce_daily_cap_per_resource"`
	WorkDailyCap               int64         `toml:"work_daily_cap"`
	TradeDailyValueCap         int64         `toml:"trade_daily_value_cap"`
	TradeFeePercent            int64         `toml:"trade_fee_percent"`
	WorkCooldown               time.Duration `toml:"work_cooldown"`
	WorkTaxPercent             int64         `toml:"work_tax_percent"`
	InterestPercent            int64         `toml:"interest_percent"`
	InflationPercent           int64         `toml:"inflation_percent"`
	MaintenancePerStrength     int64         `toml:"maintenance_per_strength"`
	TickInterval               time.Duration `toml:"tick_interval"`
	EventInterval              time.Duration `toml:"event_interval"`
}

// Default returns the reference rule set.
func Default() Rules {
	return Rules{
		ProduceDailyCapPerResource: 2000,
		WorkDailyCap:               20000,
		TradeDailyValueCap:         100000,
		TradeFeePercent:            2,
		WorkCooldown:               6 * time.Hour,
		WorkTaxPercent:             15,
		InterestPercent:            1,
		InflationPercent:           1,
		MaintenancePerStrength:     50,
		TickInterval:               time.Hour,
		EventInterval:              time.Hour,
	}
}

// Merge fills the unset cooldown, tax share and interval fields from the
// defaults and clamps a negative trade fee to zero. The daily caps and the
// tick percentages pass through untouched: a zero cap means unlimited and a
// zero percentage disables that mechanic.
func (r Rules) Merge() Rules {
	def := Default()
	if r.TradeFeePercent < 0 {
		r.TradeFeePercent = 0
	}
	if r.WorkCooldown == 0 {
		r.WorkCooldown = def.WorkCooldown
	}
	if r.WorkTaxPercent == 0 {
		r.WorkTaxPercent = def.WorkTaxPercent
	}
	if r.TickInterval == 0 {
		r.TickInterval = def.TickInterval
	}
	if r.EventInterval == 0 {
		r.EventInterval = def.EventInterval
	}
	return r
}

// ProductionEnergyCost returns the energy needed to produce amount units of res.
// Producing energy itself costs energy 1:1.
func (r Rules) ProductionEnergyCost(res Resource, amount int64) int64 {
	return productionUnitCost[res] * amount
}

var productionUnitCost = map[Resource]int64{
	ResourceMoney:     1,
	ResourceFood:      2,
	ResourceMetal:     3,
	ResourceOil:       4,
	ResourceEnergy:    1,
	ResourceMaterials: 5,
}

// Salary returns the base work salary for a role, 10 for unknown roles.
func (r Rules) Salary(rank Rank) int64 {
	if s, ok := baseSalary[rank]; ok {
		return s
	}
	return 10
}

var baseSalary = map[Rank]int64{
	RankChief:           100,
	RankViceChief:       80,
	RankEconomyMinister: 60,
	RankDefenseMinister: 60,
	RankGovernor:        40,
	RankOfficer:         30,
	RankCitizen:         20,
	RankRecruit:         10,
}

// TaxStabilityImpact is the step function mapping a tax rate to its stability delta.
func TaxStabilityImpact(rate int) int {
	switch {
	case rate <= 10:
		return 5
	case rate <= 20:
		return 0
	case rate <= 30:
		return -5
	case rate <= 40:
		return -10
	default:
		return -20
	}
}

// TaxRevenue computes floor(population * 0.01 * rate / 100).
func TaxRevenue(population int64, rate int) int64 {
	return population * int64(rate) / 10000
}

// MilitaryUnit describes a purchasable army unit.
type MilitaryUnit struct {
	Name  string
	Cost  int64
	Power int64
}

// MilitaryUnits is the fixed unit catalog, keyed by unit id.
var MilitaryUnits = map[string]MilitaryUnit{
	"soldiers": {Name: "Soldiers", Cost: 100, Power: 10},
	"vehicles": {Name: "Vehicles", Cost: 500, Power: 50},
	"aircraft": {Name: "Aircraft", Cost: 1000, Power: 100},
	"missiles": {Name: "Missiles", Cost: 2000, Power: 200},
	"navy":     {Name: "Navy", Cost: 1500, Power: 150},
}
