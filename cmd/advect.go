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
	"time"

	"github.com/pkg/profile"

	"github.com/notargets/advect2d/InputParameters"
	"github.com/notargets/advect2d/model_problems/Advection2D"

	"github.com/spf13/cobra"
)

type ModelAdvect struct {
	ICFile      string
	InitialFile string
	FinalFile   string
	AverageFile string
	Graph       bool
	Delay       time.Duration
	Profile     bool
}

// AdvectCmd represents the advect command
var AdvectCmd = &cobra.Command{
	Use:   "advect",
	Short: "Two dimensional scalar advection on a structured grid",
	Long: `
Advects a Gaussian profile of u(x,y) with a log-law streamwise velocity,
writing the initial field, final field and vertically averaged profile,

advect2d advect `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("advect called")
		ma := &ModelAdvect{}
		ma.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		ma.InitialFile, _ = cmd.Flags().GetString("initialFile")
		ma.FinalFile, _ = cmd.Flags().GetString("finalFile")
		ma.AverageFile, _ = cmd.Flags().GetString("averageFile")
		ma.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		ma.Delay = time.Duration(time.Duration(dr) * time.Millisecond)
		ma.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processInput(ma)
		RunAdvect(ma, ip)
	},
}

func processInput(ma *ModelAdvect) (ip *InputParameters.AdvectionParameters) {
	var (
		err error
	)
	ip = InputParameters.NewAdvectionParameters()
	if len(ma.ICFile) == 0 {
		fmt.Printf("No input parameters file given, using built-in defaults\n")
		exampleFile := `
########################################
Title: "Test Case"
NX: 1000
NY: 1000
CFL: 0.9
nsteps: 800
vely: 0.
########################################
`
		fmt.Printf("Example File (-I, --inputConditionsFile):%s\n", exampleFile)
	} else {
		var data []byte
		if data, err = ioutil.ReadFile(ma.ICFile); err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	}
	if err = ip.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

func init() {
	rootCmd.AddCommand(AdvectCmd)
	AdvectCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- nsteps")
	AdvectCmd.Flags().String("initialFile", "initial.dat", "Output file for the initial values of u(x,y)")
	AdvectCmd.Flags().String("finalFile", "final.dat", "Output file for the final values of u(x,y)")
	AdvectCmd.Flags().String("averageFile", "average.dat", "Output file for the vertically averaged values of u")
	AdvectCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	AdvectCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	AdvectCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the run")
}

func RunAdvect(ma *ModelAdvect, ip *InputParameters.AdvectionParameters) {
	if ma.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	ip.Print()
	c := Advection2D.NewAdvection2D(ip)
	if err := Advection2D.WriteSnapshot(ma.InitialFile, c.X, c.Y, c.Field.U); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	c.Run(ma.Graph, ma.Delay)
	if err := Advection2D.WriteSnapshot(ma.FinalFile, c.X, c.Y, c.Field.U); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err := Advection2D.WriteVerticalAverage(ma.AverageFile, c.X, c.Field.U, ip.NY); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
}
