package gemini

import "fmt"

func topicPrompt() string {
	return "Genera un tema de conversación aleatorio en español."
}

func questionsPrompt(topic string, min int) string {
	return fmt.Sprintf(`You are an AI assistant designed to generate engaging questions for a given topic.

Topic: %s

Generate a list of diverse and interesting questions that can be used to facilitate a conversation about the topic. Provide at least %d questions.
Format your response as a JSON object with a "questions" field containing an array of strings.`, topic, min)
}

func tonePrompt(topic string) string {
	return fmt.Sprintf(`You are an AI assistant that provides tone and approach suggestions for conversation topics.

Analyze the following topic and suggest the appropriate tone and approach for effective communication:

Topic: %s

Tone Suggestions:`, topic)
}
