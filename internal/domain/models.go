package domain

// User is the session-visible identity of a registered account.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// Credential is a stored login record: the public user fields plus the
// password hash. It never leaves the storage layer.
type Credential struct {
	User
	Password string `json:"password"`
}

// Question models an MCQ question with a single correct option index.
type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Quiz is an ordered collection of questions authored by one user.
type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   string     `json:"createdAt"`
}

// QuizResult captures the outcome of one quiz-taking pass. Results are
// ephemeral and never persisted.
type QuizResult struct {
	Quiz           Quiz  `json:"quiz"`
	Answers        []int `json:"answers"`
	Score          int   `json:"score"`
	TotalQuestions int   `json:"totalQuestions"`
	TimeTaken      int   `json:"timeTaken"`
}
