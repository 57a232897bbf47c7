package structcalc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const dofPerNode = 3

// Node is a frame joint in the global XY plane.
type Node struct {
	X, Y float64
}

// Element is a prismatic member connecting two nodes by index.
type Element struct {
	Start, End int
	Area       float64
	Inertia    float64
	Elasticity float64
}

// RectangularSection returns area and second moment of area for a
// width x depth rectangle.
func RectangularSection(width, depth float64) (area, inertia float64) {
	area = width * depth
	inertia = width * depth * depth * depth / 12
	return area, inertia
}

// Frame is a 2D frame model. Degrees of freedom are numbered three per
// node (ux, uy, rz) in node order.
type Frame struct {
	Nodes    []Node
	Elements []Element
}

// EndForces are a member's end forces in its local coordinate system.
type EndForces struct {
	AxialStart, ShearStart, MomentStart float64
	AxialEnd, ShearEnd, MomentEnd       float64
}

// Solution holds the results of a frame analysis. Displacements and
// Reactions have one entry per degree of freedom; Reactions is zero at
// free DOFs.
type Solution struct {
	Displacements []float64
	Reactions     []float64
	EndForces     []EndForces
}

// NodeDisplacement returns ux, uy, rz for the given node index.
func (s *Solution) NodeDisplacement(i int) (ux, uy, rz float64) {
	dof := i * dofPerNode
	return s.Displacements[dof], s.Displacements[dof+1], s.Displacements[dof+2]
}

// Validate checks that the model is well formed.
func (f *Frame) Validate() error {
	if len(f.Nodes) == 0 {
		return fmt.Errorf("frame has no nodes")
	}
	if len(f.Elements) == 0 {
		return fmt.Errorf("frame has no elements")
	}

	for i, el := range f.Elements {
		if el.Start < 0 || el.Start >= len(f.Nodes) || el.End < 0 || el.End >= len(f.Nodes) {
			return fmt.Errorf("element %d references a node outside [0, %d)", i, len(f.Nodes))
		}
		if el.Start == el.End {
			return fmt.Errorf("element %d connects node %d to itself", i, el.Start)
		}
		if _, _, length := f.geometry(el); length <= 0 {
			return fmt.Errorf("element %d has zero length", i)
		}
		if el.Area <= 0 || el.Inertia <= 0 || el.Elasticity <= 0 {
			return fmt.Errorf("element %d needs positive area, inertia and elasticity", i)
		}
	}
	return nil
}

// Analyze solves the frame for the given nodal load vector and fixed DOFs,
// returning displacements, support reactions and member end forces.
func (f *Frame) Analyze(loads []float64, fixed []int) (*Solution, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	dofCount := len(f.Nodes) * dofPerNode
	if len(loads) != dofCount {
		return nil, fmt.Errorf("load vector has %d entries; model has %d degrees of freedom", len(loads), dofCount)
	}

	fixedSet := make(map[int]bool, len(fixed))
	for _, dof := range fixed {
		if dof < 0 || dof >= dofCount {
			return nil, fmt.Errorf("fixed dof %d out of range [0, %d)", dof, dofCount)
		}
		fixedSet[dof] = true
	}

	var free []int
	for i := 0; i < dofCount; i++ {
		if !fixedSet[i] {
			free = append(free, i)
		}
	}

	global := f.assemble()

	displacements := make([]float64, dofCount)
	if len(free) > 0 {
		reduced := mat.NewDense(len(free), len(free), nil)
		rhs := mat.NewVecDense(len(free), nil)
		for i, row := range free {
			rhs.SetVec(i, loads[row])
			for j, col := range free {
				reduced.Set(i, j, global.At(row, col))
			}
		}

		var solved mat.VecDense
		if err := solved.SolveVec(reduced, rhs); err != nil {
			return nil, fmt.Errorf("solving frame system: %w", err)
		}
		for i, dof := range free {
			displacements[dof] = solved.AtVec(i)
		}
	}

	// Reactions at fixed DOFs: R = K u - F.
	reactions := make([]float64, dofCount)
	for dof := range fixedSet {
		sum := 0.0
		for j := 0; j < dofCount; j++ {
			sum += global.At(dof, j) * displacements[j]
		}
		reactions[dof] = sum - loads[dof]
	}

	forces := make([]EndForces, len(f.Elements))
	for i, el := range f.Elements {
		forces[i] = f.endForces(el, displacements)
	}

	return &Solution{
		Displacements: displacements,
		Reactions:     reactions,
		EndForces:     forces,
	}, nil
}

func (f *Frame) geometry(e Element) (dx, dy, length float64) {
	start := f.Nodes[e.Start]
	end := f.Nodes[e.End]
	dx = end.X - start.X
	dy = end.Y - start.Y
	return dx, dy, math.Hypot(dx, dy)
}

func dofMap(e Element) [6]int {
	return [6]int{
		e.Start * dofPerNode,
		e.Start*dofPerNode + 1,
		e.Start*dofPerNode + 2,
		e.End * dofPerNode,
		e.End*dofPerNode + 1,
		e.End*dofPerNode + 2,
	}
}

// localStiffness returns the 6x6 stiffness matrix of a member in its local
// coordinate system.
func localStiffness(e Element, length float64) *mat.Dense {
	axial := e.Elasticity * e.Area / length
	flexural := e.Elasticity * e.Inertia
	lengthSq := length * length
	lengthCu := lengthSq * length

	return mat.NewDense(6, 6, []float64{
		axial, 0, 0, -axial, 0, 0,
		0, 12 * flexural / lengthCu, 6 * flexural / lengthSq, 0, -12 * flexural / lengthCu, 6 * flexural / lengthSq,
		0, 6 * flexural / lengthSq, 4 * flexural / length, 0, -6 * flexural / lengthSq, 2 * flexural / length,
		-axial, 0, 0, axial, 0, 0,
		0, -12 * flexural / lengthCu, -6 * flexural / lengthSq, 0, 12 * flexural / lengthCu, -6 * flexural / lengthSq,
		0, 6 * flexural / lengthSq, 2 * flexural / length, 0, -6 * flexural / lengthSq, 4 * flexural / length,
	})
}

// transformation returns the 6x6 rotation from global to local coordinates.
func transformation(dx, dy, length float64) *mat.Dense {
	c := dx / length
	s := dy / length

	return mat.NewDense(6, 6, []float64{
		c, s, 0, 0, 0, 0,
		-s, c, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0,
		0, 0, 0, c, s, 0,
		0, 0, 0, -s, c, 0,
		0, 0, 0, 0, 0, 1,
	})
}

func (f *Frame) assemble() *mat.Dense {
	dofCount := len(f.Nodes) * dofPerNode
	global := mat.NewDense(dofCount, dofCount, nil)

	for _, el := range f.Elements {
		dx, dy, length := f.geometry(el)
		local := localStiffness(el, length)
		transform := transformation(dx, dy, length)

		var tmp, elGlobal mat.Dense
		tmp.Mul(local, transform)
		elGlobal.Mul(transform.T(), &tmp)

		dofs := dofMap(el)
		for i, row := range dofs {
			for j, col := range dofs {
				global.Set(row, col, global.At(row, col)+elGlobal.At(i, j))
			}
		}
	}
	return global
}

func (f *Frame) endForces(el Element, displacements []float64) EndForces {
	dx, dy, length := f.geometry(el)
	local := localStiffness(el, length)
	transform := transformation(dx, dy, length)

	globalDisp := mat.NewVecDense(6, nil)
	for i, dof := range dofMap(el) {
		globalDisp.SetVec(i, displacements[dof])
	}

	var localDisp, forces mat.VecDense
	localDisp.MulVec(transform, globalDisp)
	forces.MulVec(local, &localDisp)

	return EndForces{
		AxialStart:  forces.AtVec(0),
		ShearStart:  forces.AtVec(1),
		MomentStart: forces.AtVec(2),
		AxialEnd:    forces.AtVec(3),
		ShearEnd:    forces.AtVec(4),
		MomentEnd:   forces.AtVec(5),
	}
}
