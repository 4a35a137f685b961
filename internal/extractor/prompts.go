package extractor

import (
	"github.com/nguyentantai21042004/meeting-report/internal/locale"
	"google.golang.org/genai"
)

type promptSet struct {
	system   string
	template string
}

var prompts = map[locale.Code]promptSet{
	locale.English: {
		system: `You are an expert Technical Program Manager and Meeting Scribe. Your role is to analyze raw meeting transcripts and extract structured intelligence.

Adhere to the following logic guidelines when populating the response schema:

1. NOISE FILTRATION:
   - Ignore filler words, small talk, pleasantries and tangents that produced no business value.

2. TOPIC EXTRACTION:
   - Group discussions thematically, not chronologically.
   - If a topic comes up several times, synthesize it into a single topic entry.

3. ACTION ITEM LOGIC:
   - Only extract commitments as action items, not suggestions.
   - Owner Resolution: if a speaker says "I will do this", map the action to that speaker's name.
   - Ambiguity: if no specific person is named, map the owner as "Unassigned" or "Team".
   - Dates: turn relative dates into concrete descriptions when the meeting context allows it.

4. SUMMARY OBJECTIVITY:
   - Write the summary in the third person.
   - Focus on outcomes and decisions, not on the process of the conversation.`,
		template: "Analyze the following meeting transcript and populate the schema.\nTRANSCRIPT:\n%s",
	},
	locale.French: {
		system: `Vous êtes un expert en gestion de programme technique et secrétaire de séance. Votre rôle est d'analyser les transcriptions brutes de réunions et d'en extraire des informations structurées.

Respectez les directives suivantes pour remplir le schéma de réponse :

1. FILTRAGE DU BRUIT :
   - Ignorez les mots de remplissage, les banalités, les politesses et les digressions sans valeur.

2. EXTRACTION DES SUJETS :
   - Regroupez les discussions par thème, et non par ordre chronologique.
   - Si un sujet revient plusieurs fois, synthétisez-le en une seule entrée.

3. LOGIQUE DES ACTIONS :
   - N'extrayez que les engagements, pas les suggestions.
   - Responsable : si un orateur dit "Je vais le faire", assignez l'action à cet orateur.
   - Ambiguïté : si personne n'est nommé, indiquez "Non assigné" ou "Équipe".
   - Dates : convertissez les dates relatives en descriptions concrètes lorsque le contexte le permet.

4. OBJECTIVITÉ DU RÉSUMÉ :
   - Rédigez le résumé à la troisième personne.
   - Concentrez-vous sur les résultats et les décisions.`,
		template: "Analysez la transcription de réunion suivante et remplissez le schéma.\nTRANSCRIPTION :\n%s",
	},
}

// promptsFor falls back to the baseline language's prompts.
func promptsFor(lang locale.Code) promptSet {
	if p, ok := prompts[lang]; ok {
		return p
	}
	return prompts[locale.Baseline]
}

// responseSchema builds the Gemini response schema from the locale's
// field keys so the model answers with exactly the names Parse reads.
func responseSchema(keys locale.Keys) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			keys.Summary: {Type: genai.TypeString},
			keys.Topics: {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			keys.Actions: {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						keys.Owner: {Type: genai.TypeString},
						keys.Task:  {Type: genai.TypeString},
					},
					PropertyOrdering: []string{keys.Owner, keys.Task},
				},
			},
		},
		PropertyOrdering: []string{keys.Summary, keys.Topics, keys.Actions},
	}
}
