package component

// CPU hands a paddle to a scripted controller. Script is a path under prefabs/.
type CPU struct {
	Script string
}

var CPUComponent = NewComponent[CPU]()
