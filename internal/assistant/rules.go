package assistant

// Intent names the rule that produced a response.
type Intent string

const (
	IntentSessionSummary Intent = "session_summary"
	IntentLearningPath   Intent = "learning_path"
	IntentResearch       Intent = "research"
	IntentPhysics        Intent = "physics"
	IntentICDesign       Intent = "ic_design"
	IntentFallback       Intent = "fallback"
)

// SourceType tags where a citation points.
type SourceType string

const (
	SourceHandbook       SourceType = "handbook"
	SourceWeb            SourceType = "web"
	SourceLearningPath   SourceType = "learning_path"
	SourceSessionSummary SourceType = "session_summary"
)

type Citation struct {
	Title string     `json:"title"`
	URL   string     `json:"url,omitempty"`
	Type  SourceType `json:"type"`
}

// Trigger matches when every term is a substring of the lower-cased query.
type Trigger []string

// Rule is one entry of the ordered response table. It matches when any of
// its triggers does.
type Rule struct {
	Intent    Intent
	Triggers  []Trigger
	Source    SourceType
	Text      string
	Citations []Citation
}

func cite(source SourceType, pairs ...string) []Citation {
	out := make([]Citation, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Citation{Title: pairs[i], URL: pairs[i+1], Type: source})
	}
	return out
}

const fallbackText = "That's an interesting question about semiconductor technology. To give you the most helpful answer, could you provide a bit more context or specify which aspect you're most interested in learning about? I can cover topics ranging from basic physics to design, manufacturing, or industry trends."

// DefaultRules returns the response table in evaluation order. Earlier rules
// win when a query matches several.
func DefaultRules() []Rule {
	return []Rule{
		{
			Intent:   IntentSessionSummary,
			Triggers: []Trigger{{"summarize", "session"}},
			Source:   SourceSessionSummary,
			Text: "Here's a summary of your learning session today:\n\n" +
				"• You explored the fundamentals of semiconductor physics, focusing on band theory and carrier transport\n" +
				"• You spent significant time on silicon material properties, particularly its crystal structure\n" +
				"• You reviewed the p-n junction formation and its electrical characteristics\n" +
				"• You briefly looked at MOSFET operation principles\n\n" +
				"Would you like me to elaborate on any of these topics?",
			Citations: cite(SourceSessionSummary,
				"Semiconductor Physics & Materials", "",
				"Electronic Structure & Carrier Transport", "",
				"Fundamental Semiconductor Devices", "",
			),
		},
		{
			Intent:   IntentLearningPath,
			Triggers: []Trigger{{"learning path"}, {"recommend"}, {"what should i study"}},
			Source:   SourceLearningPath,
			Text: "Based on your profile and learning goals, here's a personalized learning path I recommend:\n\n" +
				"1. Start with **Semiconductor Physics & Materials** to build your foundation\n" +
				"2. Move to **Electronic Structure & Carrier Transport** to understand how electrons behave\n" +
				"3. Then explore **Fundamental Semiconductor Devices** to see practical applications\n" +
				"4. For your interest in IC design, focus on **Digital IC Design Fundamentals**\n" +
				"5. Finally, study **The IC Design Flow: From Concept to GDSII** for the complete picture\n\n" +
				"Would you like me to adjust this path based on any specific interests?",
			Citations: cite(SourceLearningPath,
				"Semiconductor Physics & Materials", "/handbook/ch3",
				"Electronic Structure & Carrier Transport", "/handbook/ch4",
				"Fundamental Semiconductor Devices", "/handbook/ch5",
				"Digital IC Design Fundamentals", "/handbook/ch6",
				"The IC Design Flow: From Concept to GDSII", "/handbook/ch8",
			),
		},
		{
			Intent:   IntentResearch,
			Triggers: []Trigger{{"latest"}, {"news"}, {"recent developments"}, {"outside the handbook"}},
			Source:   SourceWeb,
			Text: "I've searched for the latest information on semiconductor technology beyond what's in the handbook:\n\n" +
				"According to recent reports, TSMC has announced plans for their 2nm process node with production expected to begin in 2025. This represents a significant advancement in semiconductor manufacturing technology.\n\n" +
				"Additionally, research from MIT suggests new materials beyond silicon that might enable more efficient quantum computing applications.\n\n" +
				"Would you like me to explore any of these developments in more detail?",
			Citations: cite(SourceWeb,
				"TSMC 2nm Process Node Announcement", "https://example.com/tsmc-2nm",
				"MIT Research on Quantum Computing Materials", "https://example.com/mit-quantum",
			),
		},
		{
			Intent:   IntentPhysics,
			Triggers: []Trigger{{"physics"}},
			Source:   SourceHandbook,
			Text: "Semiconductor physics is the foundation of modern electronics. It deals with how electrons behave in semiconductor materials like silicon and germanium.\n\n" +
				"The key concept is the band gap, which is the energy difference between the valence band and conduction band. In semiconductors, this gap is small enough that electrons can be excited from the valence to the conduction band with a reasonable amount of energy.\n\n" +
				"Silicon has a band gap of 1.12 eV at room temperature, which makes it ideal for many electronic applications. Would you like me to explain more about specific aspects like doping, carrier transport, or band theory?",
			Citations: cite(SourceHandbook,
				"Semiconductor Physics & Materials", "/handbook/ch3",
				"Electronic Structure & Carrier Transport", "/handbook/ch4",
			),
		},
		{
			Intent:   IntentICDesign,
			Triggers: []Trigger{{"ic design"}, {"integrated circuit"}},
			Source:   SourceHandbook,
			Text: "Integrated Circuit (IC) design is the process of creating electronic circuits on semiconductor materials. The design flow typically includes:\n\n" +
				"1. Specification: Defining what the circuit should do\n" +
				"2. Architecture design: High-level structure of the circuit\n" +
				"3. RTL coding: Writing the design in a hardware description language (Verilog/VHDL)\n" +
				"4. Synthesis: Converting RTL to a gate-level netlist\n" +
				"5. Physical design: Placing and routing the gates on the chip\n" +
				"6. Verification: Ensuring the design works as expected\n" +
				"7. Tapeout: Finalizing the design for manufacturing\n\n" +
				"Are you interested in digital design, analog design, or a specific part of the design flow?",
			Citations: cite(SourceHandbook,
				"Digital IC Design Fundamentals", "/handbook/ch6",
				"Analog IC Design Fundamentals", "/handbook/ch7",
				"The IC Design Flow: From Concept to GDSII", "/handbook/ch8",
			),
		},
	}
}
