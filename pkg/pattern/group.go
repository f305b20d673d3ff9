package pattern

import (
	"math"

	"github.com/tessella/tessella/pkg/errors"
)

// Group identifies one of the 17 wallpaper groups.
type Group string

// The 17 wallpaper groups.
const (
	GroupP1   Group = "p1"
	GroupPM   Group = "pm"
	GroupPMM  Group = "pmm"
	GroupPG   Group = "pg"
	GroupCM   Group = "cm"
	GroupPMG  Group = "pmg"
	GroupCMM  Group = "cmm"
	GroupPGG  Group = "pgg"
	GroupP2   Group = "p2"
	GroupP3   Group = "p3"
	GroupP3M1 Group = "p3m1"
	GroupP31M Group = "p31m"
	GroupP4   Group = "p4"
	GroupP4M  Group = "p4m"
	GroupP4G  Group = "p4g"
	GroupP6   Group = "p6"
	GroupP6M  Group = "p6m"
)

// Groups lists all 17 wallpaper groups. The order is fixed: random group
// selection draws an index into this slice, so reordering would change
// seeded output.
var Groups = []Group{
	GroupP1, GroupPM, GroupPMM, GroupPG, GroupCM, GroupPMG, GroupCMM, GroupPGG,
	GroupP2, GroupP3, GroupP3M1, GroupP31M, GroupP4, GroupP4M, GroupP4G, GroupP6, GroupP6M,
}

// Describe returns a short human-readable summary of the group's symmetry
// operations.
func (g Group) Describe() string {
	return groupDescriptions[g]
}

var groupDescriptions = map[Group]string{
	GroupP1:   "translation only",
	GroupPM:   "reflection along one axis",
	GroupPMM:  "reflection along two axes",
	GroupPG:   "glide reflection",
	GroupCM:   "reflection and glide reflection",
	GroupPMG:  "reflection and rotation",
	GroupCMM:  "reflection and diagonal reflection",
	GroupPGG:  "two perpendicular glide reflections",
	GroupP2:   "2-fold rotation",
	GroupP3:   "3-fold rotation",
	GroupP3M1: "3-fold rotation and reflection",
	GroupP31M: "3-fold rotation and reflection",
	GroupP4:   "4-fold rotation",
	GroupP4M:  "4-fold rotation and reflection",
	GroupP4G:  "4-fold rotation, reflection and glide",
	GroupP6:   "6-fold rotation",
	GroupP6M:  "6-fold rotation and reflection",
}

// ParseGroup validates a group name from user input.
func ParseGroup(name string) (Group, error) {
	g := Group(name)
	if _, ok := ruleTable[g]; !ok {
		return "", errors.New(errors.ErrCodeInvalidGroup, "unknown wallpaper group %q", name)
	}
	return g, nil
}

// Rules is the complete geometric parameterization of one wallpaper group.
// A rule record is immutable once looked up; switching groups replaces the
// whole record, never individual fields.
type Rules struct {
	PolygonSides     int     // fundamental domain corner count, 3 or 4
	Angle0           float64 // initial corner angle in radians
	XSpacing         float64
	YSpacing         float64
	RotationOffset   float64
	RotateRule       float64 // per-column rotation increment
	RowRotateRule    float64 // per-row rotation increment
	Shear            float64
	XFlip            bool
	YFlip            bool
	YFlipPairs       bool
	YFlipRows        bool
	InstancesPerStep int // angular instances stamped per cell, ≥ 1
	MirrorInstances  bool
}

// baseSpacing is the grid spacing every group derives its cell spacings from.
const baseSpacing = 16.0

// defaultRules is the rectangular-grid parameterization shared by all groups
// before per-group overrides.
func defaultRules() Rules {
	return Rules{
		PolygonSides:     4,
		Angle0:           math.Pi / 2,
		XSpacing:         baseSpacing,
		YSpacing:         baseSpacing,
		InstancesPerStep: 1,
	}
}

// ruleTable maps each group to its full rule record. Spacing derivations
// keep the same operation order throughout (y-spacing computed from the
// already-scaled x-spacing) so float results are reproducible.
var ruleTable = buildRuleTable()

func buildRuleTable() map[Group]Rules {
	t := make(map[Group]Rules, len(Groups))

	// Triangular-lattice spacing shared by the hexagonal family.
	hexify := func(r *Rules) {
		r.XSpacing *= 2
		r.YSpacing = math.Sqrt(3.0/4) * r.XSpacing
		r.Shear = 0.5
	}

	p1 := defaultRules()
	p1.YSpacing = math.Sqrt(3.0/4) * p1.XSpacing
	p1.Angle0 = math.Pi / 3
	p1.Shear = 0.5
	p1.XSpacing *= 0.5
	t[GroupP1] = p1

	p2 := p1
	p2.RotateRule = math.Pi
	t[GroupP2] = p2

	pm := defaultRules()
	pm.XFlip = true
	pm.XSpacing *= 0.5
	t[GroupPM] = pm

	pmm := pm
	pmm.YFlipRows = true
	t[GroupPMM] = pmm

	pg := defaultRules()
	pg.YFlip = true
	pg.XSpacing *= 0.5
	t[GroupPG] = pg

	pmg := pm
	pmg.YFlipPairs = true
	t[GroupPMG] = pmg

	cmm := pmg
	cmm.YFlipRows = true
	t[GroupCMM] = cmm

	pgg := pg
	pgg.RowRotateRule = math.Pi
	t[GroupPGG] = pgg

	cm := pm
	cm.Shear = 1.0
	t[GroupCM] = cm

	p4 := defaultRules()
	p4.XSpacing *= 2
	p4.YSpacing *= 2
	p4.InstancesPerStep = 4
	t[GroupP4] = p4

	p4m := p4
	p4m.PolygonSides = 3
	p4m.Angle0 = math.Pi / 4
	p4m.MirrorInstances = true
	t[GroupP4M] = p4m

	p4g := p4
	p4g.RotateRule = math.Pi / 2
	p4g.Shear = 1
	p4g.InstancesPerStep = 2
	p4g.MirrorInstances = true
	t[GroupP4G] = p4g

	p3 := defaultRules()
	p3.RotationOffset = math.Pi / 6
	p3.Angle0 = math.Pi * 2 / 3
	hexify(&p3)
	p3.InstancesPerStep = 3
	t[GroupP3] = p3

	p3m1 := defaultRules()
	p3m1.PolygonSides = 3
	p3m1.Angle0 = math.Pi / 3
	p3m1.RotationOffset = math.Pi / 6
	p3m1.RotateRule = math.Pi * 2 / 3
	hexify(&p3m1)
	p3m1.InstancesPerStep = 3
	p3m1.MirrorInstances = true
	t[GroupP3M1] = p3m1

	p31m := defaultRules()
	p31m.PolygonSides = 3
	p31m.Angle0 = math.Pi / 6
	hexify(&p31m)
	p31m.InstancesPerStep = 3
	p31m.MirrorInstances = true
	t[GroupP31M] = p31m

	p6 := defaultRules()
	p6.PolygonSides = 3
	p6.Angle0 = math.Pi / 6
	hexify(&p6)
	p6.InstancesPerStep = 6
	t[GroupP6] = p6

	p6m := p6
	p6m.MirrorInstances = true
	t[GroupP6M] = p6m

	return t
}

// RulesFor returns the rule record for g. Unknown groups degrade to the
// default rectangular rules rather than failing.
func RulesFor(g Group) Rules {
	if r, ok := ruleTable[g]; ok {
		return r
	}
	return defaultRules()
}
