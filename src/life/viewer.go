package life

//Viewer is the interface to anything that can display the simulation or
//let the user drive it
//the simulator calls Refresh every time the state changes
type Viewer interface {
	//Refresh updates the visible state
	Refresh()
	//Register binds the viewer to the simulator it displays
	Register(s *Simulator)
	//Start hands the viewer control, it returns when the viewer is done
	Start()
}
