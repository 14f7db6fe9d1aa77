package domain

// NoticeKind drives the CSS class of the rendered notice region.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the transient feedback message shown after a sign-up action. The
// ID increases per published notice; a pending auto-hide only clears the
// notice it was armed for, so an older timer never hides a newer notice.
type Notice struct {
	ID        uint64     `json:"id"`
	Kind      NoticeKind `json:"kind"`
	Text      string     `json:"text"`
	ResetForm bool       `json:"resetForm"`
}
