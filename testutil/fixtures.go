package testutil

import "github.com/samugi/cal-cu-lator/model"

// Goals used with the payslip fixtures.
const (
	PayslipSmallGoal = 20000.00
	PayslipLargeGoal = 2048.92

	PayslipQuarterGoal = 58200.23
)

// PayslipSmall returns seven fields over three periods.
// It matches testdata/payslip_small.csv.
func PayslipSmall() []model.Field {
	return []model.Field{
		{Name: "AAAAA", Values: []float64{2948.30, 1400.10, 5875.86}},
		{Name: "BBBBB", Values: []float64{698.30, 4846.14, 3322.92}},
		{Name: "CCCCC", Values: []float64{569.09, 4591.55, 385.59}},
		{Name: "DDDDD", Values: []float64{3931.13, 675.21, 861.88}},
		{Name: "EEEEE", Values: []float64{3849.45, 7450.33, 1158.03}},
		{Name: "FFFFF", Values: []float64{2047.99, 5665.53, 8532.00}},
		{Name: "ADDED", Values: []float64{5215.07, 3600.29, 8787.48}},
	}
}

// PayslipSmallQ2 returns the same seven fields for the following quarter.
// It matches testdata/payslip_small_q2.csv.
func PayslipSmallQ2() []model.Field {
	return []model.Field{
		{Name: "AAAAA", Values: []float64{2927.34, 1403.64, 5865.46}},
		{Name: "BBBBB", Values: []float64{706.61, 4856.20, 3288.16}},
		{Name: "CCCCC", Values: []float64{530.14, 4618.55, 366.34}},
		{Name: "DDDDD", Values: []float64{3909.88, 714.86, 859.50}},
		{Name: "EEEEE", Values: []float64{3876.37, 7448.44, 1169.16}},
		{Name: "FFFFF", Values: []float64{2020.04, 5676.32, 8561.44}},
		{Name: "ADDED", Values: []float64{5216.92, 3619.59, 8801.19}},
	}
}

// PayslipLarge returns ten fields over two periods.
// It matches testdata/payslip_large.csv.
func PayslipLarge() []model.Field {
	return []model.Field{
		{Name: "AAAAA", Values: []float64{412.62, 508.20}},
		{Name: "BBBBB", Values: []float64{832.55, 424.43}},
		{Name: "CCCCC", Values: []float64{461.98, 532.77}},
		{Name: "DDDDD", Values: []float64{174.35, 465.60}},
		{Name: "EEEEE", Values: []float64{570.60, 715.75}},
		{Name: "FFFFF", Values: []float64{93.77, 280.03}},
		{Name: "GGGGG", Values: []float64{90.70, 730.58}},
		{Name: "HHHHH", Values: []float64{627.16, 47.27}},
		{Name: "IIIII", Values: []float64{884.15, 868.63}},
		{Name: "JJJJJ", Values: []float64{591.99, 557.85}},
	}
}

// PayslipQuarter returns seven fields over three periods.
// It matches testdata/payslip_quarter.csv.
func PayslipQuarter() []model.Field {
	return []model.Field{
		{Name: "BASIC", Values: []float64{14465.74, 2553.43, 4858.88}},
		{Name: "BONUS", Values: []float64{14100.73, 352.52, 10367.10}},
		{Name: "SHIFT", Values: []float64{9083.75, 9161.24, 1962.50}},
		{Name: "TAXES", Values: []float64{4404.89, 4025.57, 2909.66}},
		{Name: "PENSN", Values: []float64{870.26, 2849.92, 5592.18}},
		{Name: "UNION", Values: []float64{7604.38, 674.69, 403.19}},
		{Name: "MEALS", Values: []float64{984.77, 1518.83, 786.59}},
	}
}

// Expectation is one expected ranking entry.
type Expectation struct {
	Select uint32
	Sign   uint32
	Diff   float64
}

// PayslipSmallTop10 is the top 10 of PayslipSmall at PayslipSmallGoal.
var PayslipSmallTop10 = []Expectation{
	{0b1110010, 0b110010, 32.14999999999782},
	{0b1110011, 0b1100010, 33.650000000001455},
	{0b1111111, 0b1101010, 44.36000000000058},
	{0b1111110, 0b110110, 45.859999999996944},
	{0b1011101, 0b1010100, 85.59999999999854},
	{0b111110, 0b110100, 86.02000000000044},
	{0b1111110, 0b111010, 110.16000000000713},
	{0b1111111, 0b1100110, 111.65999999999985},
	{0b1110, 0b1110, 118.18999999999869},
	{0b1101101, 0b101101, 118.61000000000422},
}

// PayslipLargeTop3 is the top 3 of PayslipLarge at PayslipLargeGoal.
var PayslipLargeTop3 = []Expectation{
	{0b1010111110, 0b10010110, 4.547473508864641e-13},
	{0b1111100111, 0b1010000111, 0.03999999999996362},
	{0b1110011111, 0b1010010110, 0.11999999999989086},
}

// PayslipQuarterTop10 is the top 10 of PayslipQuarter at PayslipQuarterGoal.
var PayslipQuarterTop10 = []Expectation{
	{0b100111, 0b111, 23.399999999979627},
	{0b1111111, 0b1100111, 25.62999999998283},
	{0b1011, 0b1011, 161.71000000001368},
	{0b111011, 0b11011, 468.38999999998487},
	{0b1100011, 0b1100011, 470.61999999998807},
	{0b1010110, 0b1010110, 569.8400000000111},
	{0b10111, 0b111, 606.7000000000116},
	{0b1101101, 0b101101, 617.5000000000073},
	{0b1001111, 0b1000111, 655.7299999999814},
	{0b1111010, 0b1111010, 754.9500000000044},
}

// PayslipCombinedTop10 is the cross-dataset ranking of PayslipSmall and
// PayslipSmallQ2, both searched with k=10 at PayslipSmallGoal.
var PayslipCombinedTop10 = []struct {
	Key  model.Key
	Mean float64
	Seen int
}{
	{model.Key{Positive: 54, Negative: 72}, 25.0149999999976, 2},
	{model.Key{Positive: 50, Negative: 64}, 33.55499999999847, 2},
	{model.Key{Positive: 106, Negative: 21}, 34.81500000000233, 2},
	{model.Key{Positive: 98, Negative: 17}, 44.8550000000032, 2},
	{model.Key{Positive: 84, Negative: 9}, 59.79000000000087, 2},
	{model.Key{Positive: 80, Negative: 1}, 64.77000000000044, 1},
	{model.Key{Positive: 52, Negative: 10}, 77.21500000000196, 2},
	{model.Key{Positive: 58, Negative: 68}, 87.95500000000357, 2},
	{model.Key{Positive: 88, Negative: 5}, 95.55999999999767, 1},
	{model.Key{Positive: 102, Negative: 25}, 99.2549999999992, 2},
}
