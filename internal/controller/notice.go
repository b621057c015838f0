package controller

import "sync"

// NoticeKind picks the styling of a notice.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeError
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a transient message for the user.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// GenericFailureMessage is shown for every failure without a server message.
const GenericFailureMessage = "Failed to analyze sentiment. Please make sure the backend is running."

var (
	noticeEmptyInput = Notice{Kind: NoticeError, Title: "Error", Message: "Please enter some text to analyze"}
	noticeAnalyzed   = Notice{Kind: NoticeSuccess, Title: "Analysis Complete", Message: "Sentiment has been successfully analyzed"}
	noticeFailed     = Notice{Kind: NoticeError, Title: "Error", Message: GenericFailureMessage}
	noticeExample    = Notice{Kind: NoticeInfo, Title: "Example Loaded", Message: "Run 'Analyze Sentiment' to test this example"}
)

func validationNotice(msg string) Notice {
	return Notice{Kind: NoticeError, Title: "Validation Error", Message: msg}
}

// Notifier receives notices as the controller raises them.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Inbox is a Notifier that buffers notices until drained.
type Inbox struct {
	mu      sync.Mutex
	pending []Notice
}

func (b *Inbox) Notify(n Notice) {
	b.mu.Lock()
	b.pending = append(b.pending, n)
	b.mu.Unlock()
}

// Drain returns and forgets every buffered notice, oldest first.
func (b *Inbox) Drain() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pending
	b.pending = nil
	return out
}
