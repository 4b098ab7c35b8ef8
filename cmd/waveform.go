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

	"github.com/spf13/cobra"

	"github.com/notargets/gokludge/InputParameters"
	"github.com/notargets/gokludge/kerr"
	"github.com/notargets/gokludge/selfforce"
	"github.com/notargets/gokludge/stencil"
	"github.com/notargets/gokludge/trajectory"
	"github.com/notargets/gokludge/waveform"
)

// WaveformCmd represents the waveform command
var WaveformCmd = &cobra.Command{
	Use:   "waveform",
	Short: "Project the gravitational waveform for an observer direction",
	Long: `
Builds a circular equatorial orbit from the input parameters, tabulates
the multipole moment derivative series and prints the h+ and hx strain
polarizations seen by the observer.

gokludge waveform -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("waveform called")
		mr := &ModelRun{}
		mr.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		kp := processInput(mr)
		if kp.MinoTime {
			fmt.Println("waveform requires coordinate-time sampling; ignoring MinoTime")
		}
		RunWaveform(mr, kp)
	},
}

func init() {
	rootCmd.AddCommand(WaveformCmd)
	WaveformCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- ObserverR\n\t- ObserverTheta\n\t- ObserverPhi")
}

func RunWaveform(mr *ModelRun, kp *InputParameters.KludgeParameters) {
	var (
		mp  = &kerr.BoyerLindquist{A: kp.Spin, M: kp.BlackHoleMass}
		buf = trajectory.NewCircularOrbit(kp.Spin, kp.BlackHoleMass, kp.OrbitRadius, kp.NSamples, kp.TimeStep)
	)
	buf.Convert(mp, kp.Spin, kp.BlackHoleMass, kp.ProcLimit)
	ms := selfforce.ComputeMomentSeries(buf, selfforce.Eta(kp.MassRatio), kp.ProcLimit)
	wp := &waveform.Projector{
		Distance:  kp.ObserverR,
		Theta:     kp.ObserverTheta,
		Phi:       kp.ObserverPhi,
		ProcLimit: kp.ProcLimit,
	}
	hs := wp.Strain(ms)
	pad := stencil.Pad(2)
	fmt.Printf("%8s %14s %14s\n", "t", "h+", "hx")
	for i := pad; i < buf.Len()-pad; i++ {
		fmt.Printf("%8.3f %14.6e %14.6e\n", buf.Samples[i].T, hs.HPlus[i], hs.HCross[i])
	}
}
