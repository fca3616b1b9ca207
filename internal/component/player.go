// internal/component/player.go
package component

// Player хранит ресурсы игрока: здоровье базы и деньги.
type Player struct {
	BaseHP    int
	MaxBaseHP int
	Funds     int
}

// Spend списывает amount, если средств хватает.
func (p *Player) Spend(amount int) bool {
	if amount < 0 || p.Funds < amount {
		return false
	}
	p.Funds -= amount
	return true
}
