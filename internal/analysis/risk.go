package analysis

// RiskLevel grades the hazard of a wave by crest height.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskModerate
	RiskHigh
	RiskExtreme
)

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskModerate:
		return "moderate"
	case RiskHigh:
		return "high"
	default:
		return "extreme"
	}
}

type Risk struct {
	Level     RiskLevel
	MaxHeight float64
	Energy    float64
	Damage    string
}

// AssessRisk grades crest height in metres: < 0.5 low, < 2 moderate,
// < 5 high, otherwise extreme.
func AssessRisk(maxHeight, energy float64) Risk {
	var level RiskLevel
	switch {
	case maxHeight < 0.5:
		level = RiskLow
	case maxHeight < 2.0:
		level = RiskModerate
	case maxHeight < 5.0:
		level = RiskHigh
	default:
		level = RiskExtreme
	}
	return Risk{
		Level:     level,
		MaxHeight: maxHeight,
		Energy:    energy,
		Damage:    estimateDamage(maxHeight),
	}
}

func estimateDamage(height float64) string {
	switch {
	case height < 1.0:
		return "minor damage to coastal structures"
	case height < 3.0:
		return "significant damage to coastal structures, flooding of low-lying areas"
	case height < 6.0:
		return "severe structural damage, deep inland flooding"
	default:
		return "widespread destruction of coastal infrastructure"
	}
}
