package cli

import (
	"fmt"

	"github.com/aufield/sitesheet/internal/domain/structcalc"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Engineering calculators for quick site checks",
}

var (
	beamLoad       float64
	beamLength     float64
	beamElasticity float64
	beamInertia    float64
	beamAt         float64
)

var calcBeamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Simply supported beam under uniformly distributed load",
	Long: `Compute maximum deflection, bending moment and shear force for a simply
supported beam carrying a uniformly distributed load. Moment and shear are
evaluated at --at (default midspan).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deflection, err := structcalc.MaxDeflectionUDL(beamLoad, beamLength, beamElasticity, beamInertia)
		if err != nil {
			return err
		}

		at := beamAt
		if !cmd.Flags().Changed("at") {
			at = beamLength / 2
		}
		moment, err := structcalc.BendingMomentUDL(beamLoad, beamLength, at)
		if err != nil {
			return err
		}
		shear, err := structcalc.ShearForceUDL(beamLoad, beamLength, at)
		if err != nil {
			return err
		}

		fmt.Println("Simply Supported Beam, Uniformly Distributed Load")
		fmt.Printf("w=%g N/m, L=%g m, E=%g Pa, I=%g m^4\n\n", beamLoad, beamLength, beamElasticity, beamInertia)
		fmt.Printf("Maximum deflection: %.6e m\n", deflection)
		fmt.Printf("At x=%g m: M=%.3f N-m, V=%.3f N\n", at, moment, shear)
		return nil
	},
}

var (
	frameSpan   float64
	frameHeight float64
	frameLoad   float64
)

var calcFrameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Fixed-base portal frame under lateral load",
	Long: `Solve a fixed-base portal frame (two 200x200 columns, one 150x300 beam,
steel) for a lateral point load at the top-left node, using a 2D direct
stiffness analysis. Prints nodal displacements and member end forces.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		frame, loads, fixed, err := structcalc.Portal(frameSpan, frameHeight, frameLoad)
		if err != nil {
			return err
		}
		solution, err := frame.Analyze(loads, fixed)
		if err != nil {
			return fmt.Errorf("frame analysis failed: %w", err)
		}

		fmt.Println("Nodal Displacements (m, rad)")
		for i := range frame.Nodes {
			ux, uy, rz := solution.NodeDisplacement(i)
			fmt.Printf("Node %d: ux=%.6e m, uy=%.6e m, rz=%.6e rad\n", i+1, ux, uy, rz)
		}

		fmt.Println("\nMember End Forces (local coordinates, N and N-m)")
		for i, el := range frame.Elements {
			f := solution.EndForces[i]
			fmt.Printf("Element %d (node %d to %d): N1=%.3f N, V1=%.3f N, M1=%.3f N-m, N2=%.3f N, V2=%.3f N, M2=%.3f N-m\n",
				i+1, el.Start+1, el.End+1,
				f.AxialStart, f.ShearStart, f.MomentStart,
				f.AxialEnd, f.ShearEnd, f.MomentEnd)
		}
		return nil
	},
}

func init() {
	calcBeamCmd.Flags().Float64Var(&beamLoad, "load", 0, "Distributed load w in N/m")
	calcBeamCmd.Flags().Float64Var(&beamLength, "length", 0, "Span L in m")
	calcBeamCmd.Flags().Float64Var(&beamElasticity, "elasticity", 200e9, "Elastic modulus E in Pa")
	calcBeamCmd.Flags().Float64Var(&beamInertia, "inertia", 0, "Second moment of area I in m^4")
	calcBeamCmd.Flags().Float64Var(&beamAt, "at", 0, "Position x in m for moment and shear (default midspan)")
	_ = calcBeamCmd.MarkFlagRequired("load")
	_ = calcBeamCmd.MarkFlagRequired("length")
	_ = calcBeamCmd.MarkFlagRequired("inertia")

	calcFrameCmd.Flags().Float64Var(&frameSpan, "span", 5.0, "Frame span in m")
	calcFrameCmd.Flags().Float64Var(&frameHeight, "height", 4.0, "Column height in m")
	calcFrameCmd.Flags().Float64Var(&frameLoad, "load", 10e3, "Lateral load at the top-left node in N")

	calcCmd.AddCommand(calcBeamCmd)
	calcCmd.AddCommand(calcFrameCmd)
	RootCmd.AddCommand(calcCmd)
}
