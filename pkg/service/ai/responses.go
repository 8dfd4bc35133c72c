package ai

import "fmt"

const greetingResponse = "Hello! I'm Quantum Travel AI, your advanced AI assistant. " +
	"How can I help you today? I can assist with coding, problem-solving, data analysis, and much more!"

const codeResponse = `I can help you with coding! Here's an example of what I can do:

` + "```python" + `
def quantum_algorithm(data):
    '''
    Advanced algorithm with quantum-inspired optimization
    '''
    result = []
    for item in data:
        processed = item ** 2  # Example processing
        result.append(processed)
    return result

# Usage
data = [1, 2, 3, 4, 5]
output = quantum_algorithm(data)
print(output)  # [1, 4, 9, 16, 25]
` + "```" + `

Would you like me to explain this code or help with a specific programming task?`

const mathResponse = `I can help with mathematical computations! Here's an example:

**Problem**: Solve for x: 2x + 5 = 15

**Solution**:
1. Subtract 5 from both sides: 2x = 10
2. Divide both sides by 2: x = 5

**Answer**: x = 5

I can handle complex equations, calculus, linear algebra, statistics, and more. What would you like to calculate?`

const capabilitiesResponse = `Here's what I can do as Quantum Travel AI:

**Core Capabilities**:
- Natural language conversations
- Code generation and debugging
- Mathematical problem solving
- Data analysis and visualization
- Multi-language support
- Real-time information retrieval

**Advanced Features**:
- Context-aware responses
- File processing (documents, images)
- Web search integration
- Collaborative features
- Custom plugin support

**Global Support**:
- Available 24/7
- Multi-language understanding
- Cultural context awareness

How can I assist you specifically?`

func explainResponse(message string) string {
	return fmt.Sprintf(`Great question! As Quantum Travel AI, I'm designed to provide comprehensive answers.

Based on your query: %q

I can help you understand complex concepts through:
- Detailed explanations with examples
- Step-by-step breakdowns
- Visual representations
- Real-world applications
- Related resources and references

Could you provide more specific details about what you'd like to know? This will help me give you a more targeted and useful response.`, message)
}

func defaultResponse(message string) string {
	return fmt.Sprintf(`Thank you for your message! I'm Quantum Travel AI, and I'm here to help.

You said: %q

I understand you're looking for assistance. I can help with:
- **Technical Questions**: Programming, algorithms, system design
- **Problem Solving**: Mathematical, logical, analytical challenges
- **Information**: Explanations, research, data analysis
- **Creative Tasks**: Writing, brainstorming, content creation

Please feel free to ask me anything specific, and I'll provide detailed, helpful responses tailored to your needs!`, message)
}
