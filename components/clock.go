package components

import "github.com/yohamta/donburi"

// ClockData is the game clock singleton. Time is seconds since the scene
// started; DeltaTime is the length of the current tick.
type ClockData struct {
	Time      float64
	DeltaTime float64
	Frame     int
}

var Clock = donburi.NewComponentType[ClockData]()
