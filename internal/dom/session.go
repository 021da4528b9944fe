//go:build js && wasm

package dom

import "syscall/js"

// SessionStorage implements chrome.SessionStore over window.sessionStorage.
// Browsers that block storage behave as if nothing was stored.
type SessionStorage struct {
	store js.Value
}

// NewSessionStorage binds to window.sessionStorage.
func NewSessionStorage() *SessionStorage {
	var store js.Value
	func() {
		defer func() { recover() }()
		store = jsWindow.Get("sessionStorage")
	}()
	return &SessionStorage{store: store}
}

func (s *SessionStorage) Get(key string) (string, bool) {
	if !exists(s.store) {
		return "", false
	}
	v := s.store.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.String(), true
}

func (s *SessionStorage) Set(key, value string) {
	if !exists(s.store) {
		return
	}
	defer func() { recover() }()
	s.store.Call("setItem", key, value)
}
