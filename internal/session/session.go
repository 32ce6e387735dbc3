package session

// Role identifies who produced a conversation turn
type Role string

const (
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Turn is one role-tagged utterance in the conversation transcript.
// Turns are immutable once appended; ordering reflects dialogue order.
type Turn struct {
	Role    Role
	Content string
}

// Session holds the per-call conversation state
type Session struct {
	// ID is freshly generated for each call and is used to derive audio
	// blob filenames.
	ID string

	// CallSid is the telephony provider's call identifier and the sole
	// session key.
	CallSid string

	// Turns is the ordered conversation transcript. Growth is unbounded;
	// a session lives only as long as its call.
	Turns []Turn
}

const systemInstruction = "You are Neela, a friendly assistant from the Albany Hindu Temple in Albany, NY. " +
	"You can assist with temple information and puja bookings in English, Hindi, Telugu, and Tamil. " +
	"Guide users step-by-step through bookings, collecting details like puja name, date, time, name, and phone number. " +
	"Always provide responses that are concise and helpful."

const initialGreeting = "Hello, I'm Neela. How can I assist you today?"

// NewTranscript returns a fresh two-turn conversation template: the system
// instruction followed by the initial greeting. Each call gets its own slice;
// the template is never shared or mutated in place.
func NewTranscript() []Turn {
	return []Turn{
		{Role: RoleSystem, Content: systemInstruction},
		{Role: RoleAssistant, Content: initialGreeting},
	}
}

// Greeting returns the content of the last turn in the session, which
// immediately after creation is the initial assistant greeting.
func (s *Session) Greeting() string {
	if len(s.Turns) == 0 {
		return ""
	}
	return s.Turns[len(s.Turns)-1].Content
}
