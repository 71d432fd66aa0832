package recommend

import "fmt"

const SystemPrompt = `You are a helpful movie recommendation assistant. When given a user's preference, return a JSON array with 3 to 5 movie objects. Each object must contain at least 'title' (string). Optionally include 'year' and a one-sentence 'reason'. IMPORTANT: respond ONLY with valid JSON (an array). Do not add extra commentary or markdown.`

func UserPrompt(userInput string) string {
	return fmt.Sprintf("User preference: %s\nReturn 3-5 movie suggestions as a JSON array.", userInput)
}
