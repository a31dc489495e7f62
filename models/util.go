package models

import "strings"

// TrimShip strips surrounding whitespace from the ship's text fields.
func TrimShip(s *Ship) {
	s.Name = strings.TrimSpace(s.Name)
}

// TrimPort strips surrounding whitespace from the port's text fields.
func TrimPort(p *Port) {
	p.Name = strings.TrimSpace(p.Name)
	p.Country = strings.TrimSpace(p.Country)
}
