package tags

import "github.com/yohamta/donburi"

var (
	ToastDisplay = donburi.NewTag().SetName("ToastDisplay")
	DemoState    = donburi.NewTag().SetName("DemoState")
)
