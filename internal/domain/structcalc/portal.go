package structcalc

// Section and material for the portal model: 200 GPa steel, 0.2 x 0.2
// columns, 0.15 x 0.3 beam.
const portalElasticity = 200e9

// Portal builds a fixed-base portal frame: two columns of the given
// height, a connecting beam across the given span, and a lateral load
// applied at the top-left joint. It returns the model, its nodal load
// vector and the fixed DOFs.
func Portal(span, height, load float64) (*Frame, []float64, []int, error) {
	if err := validatePositive(span, "span"); err != nil {
		return nil, nil, nil, err
	}
	if err := validatePositive(height, "height"); err != nil {
		return nil, nil, nil, err
	}
	if err := validatePositive(load, "load"); err != nil {
		return nil, nil, nil, err
	}

	columnArea, columnInertia := RectangularSection(0.2, 0.2)
	beamArea, beamInertia := RectangularSection(0.15, 0.3)

	frame := &Frame{
		Nodes: []Node{
			{0, 0},
			{span, 0},
			{0, height},
			{span, height},
		},
		Elements: []Element{
			{Start: 0, End: 2, Area: columnArea, Inertia: columnInertia, Elasticity: portalElasticity},
			{Start: 1, End: 3, Area: columnArea, Inertia: columnInertia, Elasticity: portalElasticity},
			{Start: 2, End: 3, Area: beamArea, Inertia: beamInertia, Elasticity: portalElasticity},
		},
	}

	loads := make([]float64, len(frame.Nodes)*dofPerNode)
	loads[2*dofPerNode] = load

	fixed := []int{0, 1, 2, 3, 4, 5}
	return frame, loads, fixed, nil
}
