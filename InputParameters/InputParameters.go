package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type KludgeParameters struct {
	Title         string  `yaml:"Title"`
	BlackHoleMass float64 `yaml:"BlackHoleMass"`
	Spin          float64 `yaml:"Spin"` // Kerr parameter a, |a| <= BlackHoleMass
	MassRatio     float64 `yaml:"MassRatio"`
	OrbitRadius   float64 `yaml:"OrbitRadius"` // Boyer-Lindquist r of the circular orbit
	NSamples      int     `yaml:"NSamples"`
	TimeStep      float64 `yaml:"TimeStep"`
	MinoTime      bool    `yaml:"MinoTime"` // sample in Mino time, chain back to coordinate time
	ObserverR     float64 `yaml:"ObserverR"`
	ObserverTheta float64 `yaml:"ObserverTheta"`
	ObserverPhi   float64 `yaml:"ObserverPhi"`
	ProcLimit     int     `yaml:"ProcLimit"`
}

func (kp *KludgeParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, kp); err != nil {
		return err
	}
	return kp.validate()
}

func (kp *KludgeParameters) validate() error {
	if kp.BlackHoleMass <= 0 {
		return fmt.Errorf("BlackHoleMass must be positive, got %g", kp.BlackHoleMass)
	}
	if a := kp.Spin; a < -kp.BlackHoleMass || a > kp.BlackHoleMass {
		return fmt.Errorf("Spin %g outside [-M, M]", a)
	}
	if kp.MassRatio < 0 {
		return fmt.Errorf("MassRatio must be non-negative, got %g", kp.MassRatio)
	}
	if kp.TimeStep <= 0 {
		return fmt.Errorf("TimeStep must be positive, got %g", kp.TimeStep)
	}
	return nil
}

func (kp *KludgeParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", kp.Title)
	fmt.Printf("%8.5f\t\t= BlackHoleMass\n", kp.BlackHoleMass)
	fmt.Printf("%8.5f\t\t= Spin\n", kp.Spin)
	fmt.Printf("%8.5f\t\t= MassRatio\n", kp.MassRatio)
	fmt.Printf("%8.5f\t\t= OrbitRadius\n", kp.OrbitRadius)
	fmt.Printf("%8.5f\t\t= TimeStep\n", kp.TimeStep)
	fmt.Printf("[%d]\t\t\t= NSamples\n", kp.NSamples)
	fmt.Printf("[%v]\t\t\t= MinoTime\n", kp.MinoTime)
	fmt.Printf("%8.5f\t\t= ObserverR\n", kp.ObserverR)
	fmt.Printf("%8.5f\t\t= ObserverTheta\n", kp.ObserverTheta)
	fmt.Printf("%8.5f\t\t= ObserverPhi\n", kp.ObserverPhi)
}
