package component

type BallTag struct{}

var BallTagComponent = NewComponent[BallTag]()
