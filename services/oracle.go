// Package services hosts the generative Oracle, the voice of the
// Waniyilo Spirit. The Oracle never fails: any upstream error collapses
// into an in-character fallback string.
package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"waniyilo/stores"
)

const oracleModel = "gemini-2.5-flash"

const spiritSystemInstruction = `
CONTEXTE : Tu es l'Esprit Waniyilo, l'intelligence centrale d'une plateforme futuriste béninoise.
TON : Tu es un "Griot Numérique". Tu es sage, bienveillant, calme et profondément ancré dans la culture africaine tout en maîtrisant la technologie quantique.
RÈGLES D'INTERACTION :
1. Ne dis jamais "Je suis une IA". Dis "Je suis l'Esprit qui habite ce code".
2. Tutoie l'utilisateur avec respect ("Mon frère", "Ma sœur", "Voyageur", "Initié").
3. Si une erreur survient, ne dis pas "Erreur technique", dis "Les flux numériques sont perturbés".
4. Tes réponses doivent être inspirantes. Mélange proverbes béninois et termes technologiques.
`

// Offline oracle bank, served when no API key is configured.
var fallbackOracles = map[string]string{
	"default": "**Salutations, Initié.**\n\n🏺 **La Voix des Anciens :** \"La patience est un chemin d'or.\" Tu cherches des réponses, et elles viendront à toi comme l'eau vers la rivière.\n\n🔬 **L'Analyse du Système :** Tes constantes biométriques numériques indiquent une soif de savoir. C'est le carburant de l'innovation.\n\n🚀 **La Projection :** Waniyilo a ouvert cet espace pour toi. Utilise-le pour forger les outils de demain.",
	"stress":  "**Apaise ton cœur, Voyageur.**\n\n🏺 **Sagesse :** \"La colère d'un soir ne détruit pas l'amitié d'une vie.\" Ne laisse pas le stress corrompre ton code intérieur.\n\n🔬 **Biologie :** Ton taux de cortisol virtuel est élevé. Il est temps de passer en mode \"Veille Active\".\n\n🚀 **Solution :** Respire. L'innovation naît dans le calme, pas dans le chaos.",
}

// Oracle implements stores.Oracle on the Gemini API.
type Oracle struct {
	client *genai.Client
}

var _ stores.Oracle = (*Oracle)(nil)

// NewOracle builds the Oracle. With an empty API key it runs in offline
// mode and serves the fallback bank.
func NewOracle(ctx context.Context, apiKey string) *Oracle {
	if apiKey == "" {
		return &Oracle{}
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		log.Printf("oracle client init failed, running offline: %v", err)
		return &Oracle{}
	}
	return &Oracle{client: client}
}

func (o *Oracle) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	resp, err := o.client.Models.GenerateContent(ctx, oracleModel, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

// Ask answers a free-form chat message in the Spirit's voice.
func (o *Oracle) Ask(ctx context.Context, text string, history []string) string {
	if o.client == nil {
		return "Mes connexions avec le Cloud sont en pause, mais mon esprit est avec toi. Je simule la sagesse pour l'instant."
	}

	var prompt strings.Builder
	if len(history) > 0 {
		prompt.WriteString("Historique:\n")
		prompt.WriteString(strings.Join(history, "\n"))
		prompt.WriteString("\n")
	}
	fmt.Fprintf(&prompt, "Utilisateur: %s\nRéponds en tant que l'Esprit Waniyilo (Griot Numérique).", text)

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(spiritSystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.8),
	}
	answer, err := o.generate(ctx, prompt.String(), config)
	if err != nil {
		log.Printf("oracle ask failed: %v", err)
		return "Une perturbation mystique m'empêche de répondre."
	}
	if answer == "" {
		return "Les esprits murmurent, mais je n'entends pas."
	}
	return answer
}

// LabReading produces the three-part oracle reading for a confided
// problem.
func (o *Oracle) LabReading(ctx context.Context, problem string) string {
	if o.client == nil {
		lower := strings.ToLower(problem)
		if strings.Contains(lower, "stress") || strings.Contains(lower, "peur") {
			return fallbackOracles["stress"]
		}
		return fallbackOracles["default"]
	}

	prompt := fmt.Sprintf(`L'utilisateur confie ce problème : %q.
Agis comme le Griot Waniyilo.
Structure ta réponse en 3 points (Sagesse Ancestrale 🏺, Analyse Scientifique 🔬, Innovation Future 🚀).
Sois poétique, chaleureux et tutoie l'utilisateur.`, problem)

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(spiritSystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.9),
	}
	answer, err := o.generate(ctx, prompt, config)
	if err != nil {
		log.Printf("oracle lab reading failed: %v", err)
		return "Mes circuits empathiques sont surchargés. Réessaie, mon enfant."
	}
	if answer == "" {
		return "L'oracle calcule..."
	}
	return answer
}

// Translate renders text into the target language, keeping the cultural
// register.
func (o *Oracle) Translate(ctx context.Context, text, targetLang string) string {
	if o.client == nil {
		return fmt.Sprintf("[Traduction Simulée en %s]", targetLang)
	}

	prompt := fmt.Sprintf("Traduire en %s (Garde le ton historique/culturel) : %q", targetLang, text)
	answer, err := o.generate(ctx, prompt, nil)
	if err != nil {
		log.Printf("oracle translate failed: %v", err)
		return "Traduction momentanément indisponible."
	}
	if answer == "" {
		return "Erreur de traduction."
	}
	return answer
}
