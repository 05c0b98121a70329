package models

import "fmt"

// View is the screen the user last had open. It is persisted with the
// user's metadata and restored on the next login.
type View string

const (
	ViewDashboard   View = "dashboard"
	ViewMasterPlan  View = "master-plan"
	ViewConsistency View = "consistency"
)

var Views = []View{ViewDashboard, ViewMasterPlan, ViewConsistency}

func ParseView(v string) (View, error) {
	for _, view := range Views {
		if string(view) == v {
			return view, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", v)
}
