/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gokludge/InputParameters"
	"github.com/notargets/gokludge/kerr"
	"github.com/notargets/gokludge/selfforce"
	"github.com/notargets/gokludge/stencil"
	"github.com/notargets/gokludge/trajectory"
)

type ModelRun struct {
	ICFile     string
	CPUProfile bool
	Perf       bool
}

// SelfforceCmd represents the selfforce command
var SelfforceCmd = &cobra.Command{
	Use:   "selfforce",
	Short: "Evaluate the radiation-reaction self-force along a circular Kerr orbit",
	Long: `
Builds a circular equatorial orbit from the input parameters, converts it
to harmonic coordinates, assembles the radiation-reaction potentials from
high-order multipole moment derivatives and prints the self-acceleration
at every interior sample.

gokludge selfforce -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("selfforce called")
		mr := &ModelRun{}
		mr.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		mr.CPUProfile, _ = cmd.Flags().GetBool("cpuprofile")
		mr.Perf, _ = cmd.Flags().GetBool("perf")
		kp := processInput(mr)
		if mr.CPUProfile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		run := func() { RunSelfforce(mr, kp) }
		if mr.Perf {
			runCounted(run)
		} else {
			run()
		}
	},
}

func processInput(mr *ModelRun) (kp *InputParameters.KludgeParameters) {
	var (
		err error
	)
	if len(mr.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Case"
BlackHoleMass: 1.
Spin: 0.5
MassRatio: 1.e-5
OrbitRadius: 10.
NSamples: 64
TimeStep: 0.5
MinoTime: false
ObserverR: 1.e8
ObserverTheta: 0.7853981633974483
ObserverPhi: 0.
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(mr.ICFile); err != nil {
		panic(err)
	}
	kp = &InputParameters.KludgeParameters{}
	if err = kp.Parse(data); err != nil {
		panic(err)
	}
	kp.Print()
	return
}

func init() {
	rootCmd.AddCommand(SelfforceCmd)
	SelfforceCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- BlackHoleMass\n\t- Spin\n\t- OrbitRadius")
	SelfforceCmd.Flags().Bool("cpuprofile", false, "write a CPU profile to the working directory")
	SelfforceCmd.Flags().Bool("perf", false, "count CPU cycles and instructions for the run (linux only)")
}

func RunSelfforce(mr *ModelRun, kp *InputParameters.KludgeParameters) {
	var (
		mp    = &kerr.BoyerLindquist{A: kp.Spin, M: kp.BlackHoleMass}
		buf   = trajectory.NewCircularOrbit(kp.Spin, kp.BlackHoleMass, kp.OrbitRadius, kp.NSamples, kp.TimeStep)
		param = selfforce.CoordinateTime
	)
	if kp.MinoTime {
		param = selfforce.MinoTime
	}
	sf := selfforce.NewAssembler(mp, kp.Spin, kp.BlackHoleMass, kp.MassRatio, param, kp.ProcLimit)
	accs := sf.EvaluateAll(buf)
	pad := 2 * stencil.MaxPad
	fmt.Printf("%8s %12s %12s %12s %12s\n", "t", "a_t", "a_r", "a_theta", "a_phi")
	for i := pad; i < buf.Len()-pad; i++ {
		a := accs[i].BoyerLindquist
		fmt.Printf("%8.3f %12.5e %12.5e %12.5e %12.5e\n",
			buf.Samples[i].T, a[0], a[1], a[2], a[3])
	}
}
