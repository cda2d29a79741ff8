package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMerge_FillsDefaultsButKeepsZeroCaps(t *testing.T) {
	r := Rules{
		ProduceDailyCapPerResource: 0,
		WorkDailyCap:               0,
		TradeDailyValueCap:         0,
	}.Merge()

	// Zero caps mean unlimited and must survive the merge.
	assert.Equal(t, int64(0), r.ProduceDailyCapPerResource)
	assert.Equal(t, int64(0), r.WorkDailyCap)
	assert.Equal(t, int64(0), r.TradeDailyValueCap)

	assert.Equal(t, 6*time.Hour, r.WorkCooldown)
	assert.Equal(t, int64(15), r.WorkTaxPercent)
	assert.Equal(t, time.Hour, r.TickInterval)
	assert.Equal(t, time.Hour, r.EventInterval)
}

func TestMerge_KeepsExplicitValues(t *testing.T) {
	r := Rules{
		WorkCooldown:   time.Hour,
		WorkTaxPercent: 5,
		TickInterval:   30 * time.Minute,
	}.Merge()

	assert.Equal(t, time.Hour, r.WorkCooldown)
	assert.Equal(t, int64(5), r.WorkTaxPercent)
	assert.Equal(t, 30*time.Minute, r.TickInterval)
}

func TestMerge_NegativeTradeFeeBecomesZero(t *testing.T) {
	r := Rules{TradeFeePercent: -3}.Merge()
	assert.Equal(t, int64(0), r.TradeFeePercent)
}

func TestProductionEnergyCost(t *testing.T) {
	r := Default()

	tests := []struct {
		res    Resource
		amount int64
		want   int64
	}{
		{ResourceMoney, 100, 100},
		{ResourceFood, 100, 200},
		{ResourceMetal, 100, 300},
		{ResourceOil, 100, 400},
		{ResourceEnergy, 100, 100},
		{ResourceMaterials, 100, 500},
	}
	for _, tt := range tests {
		t.Run(string(tt.res), func(t *testing.T) {
			assert.Equal(t, tt.want, r.ProductionEnergyCost(tt.res, tt.amount))
		})
	}
}

func TestSalary(t *testing.T) {
	r := Default()

	assert.Equal(t, int64(100), r.Salary(RankChief))
	assert.Equal(t, int64(80), r.Salary(RankViceChief))
	assert.Equal(t, int64(60), r.Salary(RankEconomyMinister))
	assert.Equal(t, int64(60), r.Salary(RankDefenseMinister))
	assert.Equal(t, int64(40), r.Salary(RankGovernor))
	assert.Equal(t, int64(30), r.Salary(RankOfficer))
	assert.Equal(t, int64(20), r.Salary(RankCitizen))
	assert.Equal(t, int64(10), r.Salary(RankRecruit))
	assert.Equal(t, int64(10), r.Salary(Rank(99)))
}

func TestTaxStabilityImpact(t *testing.T) {
	tests := []struct {
		rate int
		want int
	}{
		{0, 5},
		{10, 5},
		{11, 0},
		{20, 0},
		{21, -5},
		{30, -5},
		{31, -10},
		{40, -10},
		{41, -20},
		{50, -20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TaxStabilityImpact(tt.rate), "rate %d", tt.rate)
	}
}

func TestTaxRevenue(t *testing.T) {
	// 1,000,000 population at 15% -> floor(1,000,000 * 0.01 * 15 / 100) = 1500
	assert.Equal(t, int64(1500), TaxRevenue(1_000_000, 15))
	assert.Equal(t, int64(0), TaxRevenue(9999, 1))
	assert.Equal(t, int64(1), TaxRevenue(10000, 1))
}

func TestValidResource(t *testing.T) {
	for _, res := range Resources {
		assert.True(t, ValidResource(string(res)))
	}
	assert.False(t, ValidResource("plutonium"))
	assert.False(t, ValidResource(""))
}
