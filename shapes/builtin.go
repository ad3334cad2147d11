package shapes

import (
	"math"

	"voxport/voxel"
)

// Avatar is the standing portrait figure on a two-tone disc.
func Avatar() voxel.Dataset {
	b := voxel.NewBuilder()
	const by = 0

	// Legs and shoes.
	b.Box(-2.5, by-1, -1, -1, by, 1.5, Shoes)
	b.Box(1, by-1, -1, 2.5, by, 1.5, Shoes)
	b.Box(-2, by, -0.8, -1, by+9, 0.8, Trousers)
	b.Box(1, by, -0.8, 2, by+9, 0.8, Trousers)
	b.Box(-2, by+9, -0.8, 2, by+10, 0.8, Trousers)

	// Torso: shirt, blazer panels and lapels.
	b.Box(-2.5, by+10, -1, 2.5, by+18, 1, Shirt)
	b.Box(-3, by+10, -1.2, -1, by+18, 1.2, Blazer)
	b.Box(1, by+10, -1.2, 3, by+18, 1.2, Blazer)
	b.Box(-1, by+10, -1.2, 1, by+18, -0.8, Blazer)
	for y := 10.0; y <= 16; y++ {
		w := 1 + (y-10)*0.2
		b.Box(-2.5, y, 1, -w, y, 1.2, Blazer)
		b.Box(w, y, 1, 2.5, y, 1.2, Blazer)
	}

	b.Box(-0.4, by+11, 1.1, 0.4, by+16, 1.3, RedTie)
	b.Set(0, by+17, 1.2, RedTie)

	// Arms and hands.
	b.Box(-4, by+14, -0.8, -3, by+18, 0.8, Blazer)
	b.Box(3, by+14, -0.8, 4, by+18, 0.8, Blazer)
	b.Box(-4.2, by+10, -0.8, -3.2, by+14, 0.8, Blazer)
	b.Box(3.2, by+10, -0.8, 4.2, by+14, 0.8, Blazer)
	b.Sphere(-3.7, by+9, 0, 1.2, Skin, 1)
	b.Sphere(3.7, by+9, 0, 1.2, Skin, 1)

	// Neck, head, eyes and hair.
	b.Box(-0.8, by+18, -0.5, 0.8, by+19, 0.5, Skin)
	b.Sphere(0, by+22, 0, 3.2, Skin, 1.1)
	b.Set(-1, by+23, 2.8, Black)
	b.Set(1, by+23, 2.8, Black)
	b.Sphere(0, by+24.5, 0, 3.5, Black, 0.8)
	b.Box(-3.2, by+21, -3, 3.2, by+25, -1, Black)
	b.Box(-3.4, by+22, -1, -2.8, by+25, 1, Black)
	b.Box(2.8, by+22, -1, 3.4, by+25, 1, Black)

	// Pedestal.
	b.Sphere(0, by-5, 0, 10, CyberBlue, 0.15)
	b.Sphere(0, by-5.5, 0, 8, NeonPurple, 0.1)

	return b.Dataset()
}

// About is a desk with papers and a mug.
func About() voxel.Dataset {
	b := voxel.NewBuilder()
	b.Box(-8, 0, -6, 8, 1, 6, White)
	b.Box(-8.5, -0.5, -6.5, 8.5, 0.5, 6.5, Blazer)
	b.Box(-6, 1.2, -4, 0, 1.4, -3, Metal)
	b.Box(-6, 1.2, -2, 2, 1.4, -1, Metal)
	b.Box(-6, 1.2, 1, -2, 1.4, 2, Metal)
	b.Box(4, 1.2, 1, 6, 4, 4, Skin)
	return b.Dataset()
}

// Skills is a mast with four colored nodes on spokes.
func Skills() voxel.Dataset {
	b := voxel.NewBuilder()
	b.Box(-0.5, 0, -0.5, 0.5, 12, 0.5, Metal)
	nodes := []struct {
		x, y, z float64
		color   uint32
	}{
		{-5, 14, 0, CyberBlue},
		{5, 12, 0, NeonPurple},
		{0, 16, 5, GoldCert},
		{0, 8, -6, Green},
	}
	for _, n := range nodes {
		b.Sphere(n.x, n.y, n.z, 3.5, n.color, 1)
		b.Box(0, n.y, 0, n.x, n.y, n.z, Metal)
	}
	return b.Dataset()
}

// Education is a graduation cap over a flat white disc.
func Education() voxel.Dataset {
	b := voxel.NewBuilder()
	b.Box(-6, 10, -6, 6, 10.5, 6, Black)
	b.Box(-3, 6, -3, 3, 10, 3, Black)
	b.Box(6, 10, 0, 6.5, 4, 0.5, GoldCert)
	b.Sphere(0, 2, 0, 8, White, 0.1)
	b.Box(-7, 1.5, -1, -6, 2.5, 1, NeonPurple)
	return b.Dataset()
}

// Projects is three posts topped with a blue orb, a purple orb and a green
// cross.
func Projects() voxel.Dataset {
	b := voxel.NewBuilder()
	b.Sphere(-10, 8, 0, 4, CyberBlue, 1)
	b.Box(-10.5, 0, -0.5, -9.5, 6, 0.5, Metal)
	b.Sphere(0, 10, 0, 5, NeonPurple, 1)
	b.Box(-0.5, 0, -0.5, 0.5, 8, 0.5, Metal)
	b.Box(8, 8, -2, 12, 12, 2, Green)
	b.Box(6, 9.5, -1.5, 14, 10.5, 1.5, Green)
	b.Box(9.5, 6, -1.5, 10.5, 14, 1.5, Green)
	b.Box(9.5, 0, -0.5, 10.5, 8, 0.5, Metal)
	return b.Dataset()
}

// Certifications is three framed certificates with gold seals.
func Certifications() voxel.Dataset {
	b := voxel.NewBuilder()
	for i := 0; i < 3; i++ {
		x := float64(i-1) * 12
		y := 8.0
		if i%2 != 0 {
			y += 4
		}
		b.Box(x-5, y-4, 0, x+5, y+4, 1, Metal)
		b.Box(x-4.5, y-3.5, 0.5, x+4.5, y+3.5, 1.2, White)
		b.Sphere(x, y-5, 0, 2, GoldCert, 1)
	}
	return b.Dataset()
}

// Achievements is a trophy on a stepped base under a row of gold stars.
func Achievements() voxel.Dataset {
	b := voxel.NewBuilder()
	b.Box(-4, 0, -4, 4, 2, 4, Metal)
	b.Box(-3, 2, -3, 3, 4, 3, Metal)
	b.Box(-2, 4, -2, 2, 6, 2, Metal)
	b.Sphere(0, 12, 0, 5, GoldCert, 1)
	b.Box(-1, 6, -1, 1, 9, 1, GoldCert)
	for i := 0; i < 5; i++ {
		b.Sphere(float64(i-2)*6, 20, 0, 1.5, Gold, 1)
	}
	return b.Dataset()
}

// Contact is a mailbox with its flag up and letters flying out.
func Contact() voxel.Dataset {
	b := voxel.NewBuilder()
	const by = 0

	// Post and base plate.
	b.Box(-1, by-10, -1, 1, by+2, 1, Metal)
	b.Box(-3, by-10, -3, 3, by-8, 3, Blazer)

	// Body: floor, walls and an arched roof.
	b.Box(-5, by+2, -10, 5, by+3, 10, Blazer)
	b.Box(-5, by+3, -10, -4.5, by+10, 10, Blazer)
	b.Box(4.5, by+3, -10, 5, by+10, 10, Blazer)
	for r := 0.0; r <= 5; r += 0.5 {
		angle := r / 5 * math.Pi
		ox := math.Cos(angle) * 5
		oy := math.Sin(angle)*4 + 10
		b.Box(ox-0.5, by+oy, -10, ox+0.5, by+oy+1, 10, Blazer)
	}
	b.Box(-5, by+3, -10, 5, by+14, -9.5, Blazer)

	// Door and handle.
	b.Box(-5, by+3, 10, 5, by+14, 10.5, Metal)
	b.Box(-0.5, by+11, 10.5, 0.5, by+13, 11, GoldCert)

	// Flag.
	b.Box(5.2, by+6, 2, 5.5, by+18, 2.5, RedTie)
	b.Box(5.2, by+15, 2.5, 5.5, by+19, 6, RedTie)

	// Letters and data packets.
	b.Box(-2, by+18, 12, 2, by+21, 12.5, White)
	b.Box(4, by+22, 15, 8, by+25, 15.5, CyberBlue)
	b.Sphere(-6, by+24, 18, 1.5, CyberBlue, 1)
	b.Sphere(2, by+28, 20, 1.2, NeonPurple, 1)
	b.Sphere(-3, by+32, 22, 0.8, GoldCert, 1)

	return b.Dataset()
}
