// Package modal holds the frames shown by nested navigation and the
// open/closing/closed state machine used by every top-level modal.
package modal

import "github.com/okian/huntersfinds/internal/domain/model"

// FrameKind tags the payload carried by a Frame.
type FrameKind string

const (
	FrameUser  FrameKind = "user"
	FrameDish  FrameKind = "dish"
	FrameGroup FrameKind = "group"
)

// Frame is one entry of the navigation stack. Exactly one payload is set,
// matching Kind.
type Frame struct {
	kind  FrameKind
	user  model.User
	dish  model.Dish
	group model.Group
}

// UserFrame wraps a user profile.
func UserFrame(u model.User) Frame { return Frame{kind: FrameUser, user: u} }

// DishFrame wraps a dish detail.
func DishFrame(d model.Dish) Frame { return Frame{kind: FrameDish, dish: d} }

// GroupFrame wraps a group detail.
func GroupFrame(g model.Group) Frame { return Frame{kind: FrameGroup, group: g} }

// Kind returns the payload tag. The zero Frame has an empty kind.
func (f Frame) Kind() FrameKind { return f.kind }

// IsZero reports whether f carries no payload.
func (f Frame) IsZero() bool { return f.kind == "" }

// User returns the user payload.
func (f Frame) User() (model.User, bool) {
	if f.kind != FrameUser {
		return model.User{}, false
	}
	return f.user, true
}

// Dish returns the dish payload.
func (f Frame) Dish() (model.Dish, bool) {
	if f.kind != FrameDish {
		return model.Dish{}, false
	}
	return f.dish, true
}

// Group returns the group payload.
func (f Frame) Group() (model.Group, bool) {
	if f.kind != FrameGroup {
		return model.Group{}, false
	}
	return f.group, true
}

// Title is a short display label for the frame.
func (f Frame) Title() string {
	switch f.kind {
	case FrameUser:
		return f.user.Username
	case FrameDish:
		return f.dish.Name
	case FrameGroup:
		return f.group.Name
	default:
		return ""
	}
}
