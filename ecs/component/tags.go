package component

type AvatarTag struct{}

var AvatarTagComponent = NewComponent[AvatarTag]()

// Obstacle ends the run on contact and scores when it scrolls past.
type Obstacle struct{}

var ObstacleComponent = NewComponent[Obstacle]()

// Coin is collected on contact for a bonus.
type Coin struct{}

var CoinComponent = NewComponent[Coin]()
