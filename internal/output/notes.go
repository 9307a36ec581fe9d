package output

// DefaultNotes lists the conventions stated at the foot of HTML and PDF reports.
var DefaultNotes = []string{
	"Valeurs du point DFP et coefficients de capitalisation : barème par tranches d'âge, sans interpolation.",
	"Âge inférieur à 20 ans : valeurs de la tranche de 20 ans.",
	"Souffrances endurées et préjudice esthétique : fourchette de la cotation sur 7, moyenne retenue pour l'enregistrement.",
	"Tierce personne permanente : 365 jours par an, capitalisée selon l'âge.",
	"Montants en euros, sans actualisation ni revalorisation.",
}
