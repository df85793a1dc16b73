package entity

// Inventory holds what the player carries.
type Inventory struct {
	HasSword        bool
	Fragments       int
	Supercollateral int
}

// AddSword gives the player the Sword of Solvency.
func (i *Inventory) AddSword() { i.HasSword = true }

// RemoveSword takes the sword away.
func (i *Inventory) RemoveSword() { i.HasSword = false }

// AddFragment adds one Superseed fragment.
func (i *Inventory) AddFragment() { i.Fragments++ }

// AddSupercollateral adds currency.
func (i *Inventory) AddSupercollateral(amount int) {
	i.Supercollateral += amount
}

// SpendSupercollateral deducts amount if the player can afford it.
func (i *Inventory) SpendSupercollateral(amount int) bool {
	if i.Supercollateral < amount {
		return false
	}
	i.Supercollateral -= amount
	return true
}
