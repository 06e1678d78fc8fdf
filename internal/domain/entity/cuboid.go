package entity

// Cuboid is a 3D box tested through its XY and YZ projections.
type Cuboid struct {
	X, Y, Z             int
	SizeX, SizeY, SizeZ int
}

// SetPos moves the cuboid.
func (c *Cuboid) SetPos(x, y, z int) {
	c.X, c.Y, c.Z = x, y, z
}

// CollidesWith reports whether both projections of c overlap those of o.
func (c Cuboid) CollidesWith(o Cuboid) bool {
	xy := R(c.X, c.Y, c.SizeX, c.SizeY).Intersects(R(o.X, o.Y, o.SizeX, o.SizeY))
	yz := R(c.Y, c.Z, c.SizeY, c.SizeZ).Intersects(R(o.Y, o.Z, o.SizeY, o.SizeZ))
	return xy && yz
}
