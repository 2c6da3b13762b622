// Package utils carries the small academy helpers: the proverb of the
// day and the content seeder.
package utils

import "time"

// Proverbs is the bank shown on the dashboard home panel.
var Proverbs = []string{
	"Le fleuve qui oublie sa source tarit.",
	"La patience est un chemin d'or.",
	"L'union dans le troupeau oblige le lion à se coucher avec la faim.",
	"On ne mesure pas la profondeur de l'eau avec les deux pieds.",
	"C'est au bout de la vieille corde qu'on tisse la nouvelle.",
	"Si tu veux aller vite, marche seul. Si tu veux aller loin, marchons ensemble.",
	"Le mensonge donne des fleurs mais pas de fruits.",
	"Ce que le vieux voit assis, le jeune ne le voit pas debout.",
	"L'intelligence n'est pas qu'une seule personne ait raison.",
	"L'eau chaude n'oublie jamais qu'elle a été froide.",
	"Le serpent ne mord pas celui qui connaît son sifflement.",
	"La sagesse est comme un baobab : une seule personne ne peut l'embrasser.",
}

// DailyProverb picks the proverb for the given day. Everyone sees the
// same proverb on the same date.
func DailyProverb(now time.Time) string {
	day := now.YearDay() + now.Year()
	return Proverbs[day%len(Proverbs)]
}
