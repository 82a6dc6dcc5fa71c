// Package pokerole holds the data model for the Pokérole tabletop RPG:
// creature characters, trainers, rosters and the reference records
// (species, moves, abilities, natures, items) they are built from.
//
// Characters and trainers are plain values. Rules that change them live in
// internal/engine; persistence lives in internal/repositories.
package pokerole
