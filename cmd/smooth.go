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
	"os"

	"github.com/meshforge/blocksmoother/InputParameters"
	"github.com/meshforge/blocksmoother/blockmesh"
	"github.com/meshforge/blocksmoother/checkpoint"
	"github.com/meshforge/blocksmoother/export"
	"github.com/meshforge/blocksmoother/getme"
	"github.com/spf13/cobra"
)

// SmoothModel holds the parsed flags for the smooth command, in the style of
// gocfd's Model2D.
type SmoothModel struct {
	MeshFile       string
	DictFile       string
	CheckpointFile string
	Resume         bool
	WireframeOut   string
}

// SmoothCmd represents the smooth command.
var SmoothCmd = &cobra.Command{
	Use:   "smooth",
	Short: "Evaluate and smooth a hexahedral block mesh with GETMe",
	Long:  `Reads a block mesh and an input dictionary, runs the simultaneous and sequential GETMe smoothers, and reports before/after quality statistics.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		sm := &SmoothModel{}
		if sm.MeshFile, err = cmd.Flags().GetString("meshFile"); err != nil {
			panic(err)
		}
		if sm.DictFile, err = cmd.Flags().GetString("dictFile"); err != nil {
			panic(err)
		}
		sm.CheckpointFile, _ = cmd.Flags().GetString("checkpoint")
		sm.Resume, _ = cmd.Flags().GetBool("resume")
		sm.WireframeOut, _ = cmd.Flags().GetString("wireframeOut")
		RunSmooth(sm)
	},
}

func init() {
	rootCmd.AddCommand(SmoothCmd)
	SmoothCmd.Flags().StringP("meshFile", "m", "", "block mesh file in JSON format")
	SmoothCmd.Flags().StringP("dictFile", "d", "", "YAML input dictionary containing the \"smoother\" sub-dictionary")
	SmoothCmd.Flags().String("checkpoint", "", "checkpoint file to save/resume sequential smoothing progress")
	SmoothCmd.Flags().Bool("resume", false, "resume from --checkpoint instead of starting fresh")
	SmoothCmd.Flags().String("wireframeOut", "", "write a wireframe GLB of the smoothed mesh to this path")
}

func processSmoothInput(sm *SmoothModel) (mesh *blockmesh.Mesh, dict *InputParameters.MeshDict) {
	var (
		err      error
		willExit bool
	)
	if len(sm.MeshFile) == 0 {
		fmt.Println("error: must supply a mesh file (-m, --meshFile) in JSON block-mesh format")
		willExit = true
	}
	if len(sm.DictFile) == 0 {
		fmt.Println("error: must supply an input dictionary (-d, --dictFile) in YAML format")
		fmt.Println(`Example File:
smoother:
  factorQualityMin: 0.1
  factorQualityMax: 0.4
  relaxation: 0.5
  averageMultipleCells: 2
  maxSimultaneousIter: 20
  sequentialTransformationParam: 0.3
  sequentialRelaxationParam: 0.5
  sequentialMinimalChange: 0.001
  deltaPiI: 0.1
  deltaPiR: 0.3
  deltaPiS: 0.2`)
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}

	if mesh, err = blockmesh.ReadMeshFile(sm.MeshFile); err != nil {
		panic(err)
	}

	data, err := os.ReadFile(sm.DictFile)
	if err != nil {
		panic(err)
	}
	dict = &InputParameters.MeshDict{}
	if err = dict.Parse(data); err != nil {
		panic(err)
	}
	return
}

// RunSmooth wires the mesh reader, checkpoint restore, orchestrator, and
// diagnostics/export into a single command run.
func RunSmooth(sm *SmoothModel) {
	mesh, dict := processSmoothInput(sm)

	if dict.Smoother == nil {
		fmt.Println("no \"smoother\" dictionary present; nothing to do")
		return
	}
	dict.Smoother.Print()

	if sm.Resume && sm.CheckpointFile != "" {
		state, err := checkpoint.Load(sm.CheckpointFile, mesh)
		if err != nil {
			panic(err)
		}
		for i, p := range state.Points {
			mesh.SetPoint(blockmesh.PointId(i), p)
		}
		fmt.Printf("resumed from checkpoint at iteration %d\n", state.Iterations)
	}

	before := getme.ComputeStatistics(mesh)
	fmt.Println("before smoothing:")
	before.Print(os.Stdout)

	result, err := getme.Run(mesh, dict.Smoother, os.Stdout)
	if err != nil {
		panic(err)
	}

	if sm.CheckpointFile != "" {
		state := checkpoint.State{Points: mesh.Points(), Iterations: result.Sequential.Iterations}
		if err := checkpoint.Save(sm.CheckpointFile, mesh, state); err != nil {
			panic(err)
		}
	}

	after := getme.ComputeStatistics(mesh)
	fmt.Println("after smoothing:")
	after.Print(os.Stdout)

	if sm.WireframeOut != "" {
		if err := export.WireframeGLB(mesh, sm.WireframeOut); err != nil {
			panic(err)
		}
	}
}
