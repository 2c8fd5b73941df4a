// Package models defines the canonical records produced by the normalizer.
//
// # Categories
//
// Category names the collection a file is classified into: characters, weapons, echoes
// or items. Unknown marks files nothing could classify. Resources is produced only by
// the structural detector and is always reported as items.
//
// # Records
//
//	record     notable fields
//	Character  level, equipped weapon name and level, skills in SkillSlots order, icon
//	Weapon     level, ascension, rarity
//	Echo       sonata, cost, rarity, main stat and sub stats with resolved labels
//	Item       quantity
//
// Every record keeps the decoded source object under Raw so consumers can reach data
// the canonical shape does not model. Values whose type varies across exporters (levels,
// rarities, quantities) are passed through as decoded JSON values.
//
// # Identity
//
// ID holds numeric ids in decimal form and slug ids verbatim. It encodes numeric ids as
// JSON numbers, slugs as strings and the zero value as null. The Key methods give the
// identity used by deduplicating merges: the id, or the name when the id is absent.
package models
