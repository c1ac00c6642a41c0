package db

import (
	"github.com/algonquin/registrar/academic"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Database struct {
	Pool *pgxpool.Pool
}

func FormatOptionalGrade(g *academic.Grade) *string {
	if g == nil {
		return nil
	}
	s := string(*g)
	return &s
}

func ParseOptionalGrade(s *string) *academic.Grade {
	if s == nil {
		return nil
	}
	g := academic.Grade(*s)
	return &g
}
