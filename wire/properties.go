package wire

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"
)

// Typed property accessors. Values are stored as canonical string
// representations; a missing key returns the supplied default (or the
// type's zero value), never an error.

// GetStringProperty returns the raw nullable value for key. A nil result
// means the key is absent or explicitly null.
func (m *Message) GetStringProperty(key string) *string {
	v, _ := m.Properties.Get(key)
	return v
}

// SetStringProperty stores a nullable string value under key.
func (m *Message) SetStringProperty(key string, value *string) {
	m.Properties.Set(key, value)
}

// GetString returns the value for key, or def (default "") when the key is
// absent or null.
func (m *Message) GetString(key string, def ...string) string {
	if v := m.GetStringProperty(key); v != nil {
		return *v
	}
	if len(def) > 0 {
		return def[0]
	}
	return ""
}

// SetString stores a non-null string value under key.
func (m *Message) SetString(key, value string) {
	m.Properties.Set(key, &value)
}

// GetIntProperty returns the int64 value for key, or def (default 0) when
// the key is absent, null, or unparsable.
func (m *Message) GetIntProperty(key string, def ...int64) int64 {
	fallback := int64(0)
	if len(def) > 0 {
		fallback = def[0]
	}
	v := m.GetStringProperty(key)
	if v == nil {
		return fallback
	}
	n, err := strconv.ParseInt(*v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// SetIntProperty stores an int64 value under key.
func (m *Message) SetIntProperty(key string, value int64) {
	m.SetString(key, strconv.FormatInt(value, 10))
}

// GetInt32Property returns the int32 value for key, or def (default 0).
func (m *Message) GetInt32Property(key string, def ...int32) int32 {
	fallback := int64(0)
	if len(def) > 0 {
		fallback = int64(def[0])
	}
	return int32(m.GetIntProperty(key, fallback))
}

// SetInt32Property stores an int32 value under key.
func (m *Message) SetInt32Property(key string, value int32) {
	m.SetIntProperty(key, int64(value))
}

// GetBoolProperty returns the bool value for key, or def (default false).
func (m *Message) GetBoolProperty(key string, def ...bool) bool {
	fallback := false
	if len(def) > 0 {
		fallback = def[0]
	}
	v := m.GetStringProperty(key)
	if v == nil {
		return fallback
	}
	b, err := strconv.ParseBool(*v)
	if err != nil {
		return fallback
	}
	return b
}

// SetBoolProperty stores a bool value under key.
func (m *Message) SetBoolProperty(key string, value bool) {
	m.SetString(key, strconv.FormatBool(value))
}

// GetDoubleProperty returns the float64 value for key, or def (default 0).
func (m *Message) GetDoubleProperty(key string, def ...float64) float64 {
	fallback := 0.0
	if len(def) > 0 {
		fallback = def[0]
	}
	v := m.GetStringProperty(key)
	if v == nil {
		return fallback
	}
	f, err := strconv.ParseFloat(*v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// SetDoubleProperty stores a float64 value under key using the shortest
// round-trippable representation.
func (m *Message) SetDoubleProperty(key string, value float64) {
	m.SetString(key, strconv.FormatFloat(value, 'g', -1, 64))
}

// GetDateTimeProperty returns the time value for key, or def (default zero
// time). Values are stored as RFC 3339 with nanoseconds, in UTC.
func (m *Message) GetDateTimeProperty(key string, def ...time.Time) time.Time {
	var fallback time.Time
	if len(def) > 0 {
		fallback = def[0]
	}
	v := m.GetStringProperty(key)
	if v == nil {
		return fallback
	}
	t, err := time.Parse(time.RFC3339Nano, *v)
	if err != nil {
		return fallback
	}
	return t
}

// SetDateTimeProperty stores a time value under key in UTC.
func (m *Message) SetDateTimeProperty(key string, value time.Time) {
	m.SetString(key, value.UTC().Format(time.RFC3339Nano))
}

// GetTimeSpanProperty returns the duration for key, or def (default 0).
// Durations are stored as integer nanoseconds.
func (m *Message) GetTimeSpanProperty(key string, def ...time.Duration) time.Duration {
	fallback := time.Duration(0)
	if len(def) > 0 {
		fallback = def[0]
	}
	v := m.GetStringProperty(key)
	if v == nil {
		return fallback
	}
	n, err := strconv.ParseInt(*v, 10, 64)
	if err != nil {
		return fallback
	}
	return time.Duration(n)
}

// SetTimeSpanProperty stores a duration under key as integer nanoseconds.
func (m *Message) SetTimeSpanProperty(key string, value time.Duration) {
	m.SetString(key, strconv.FormatInt(int64(value), 10))
}

// GetBytesProperty returns the byte value for key, or nil when the key is
// absent, null, or not valid base64.
func (m *Message) GetBytesProperty(key string) []byte {
	v := m.GetStringProperty(key)
	if v == nil {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(*v)
	if err != nil {
		return nil
	}
	return data
}

// SetBytesProperty stores a byte value under key as base64. A nil value is
// stored as a null property.
func (m *Message) SetBytesProperty(key string, value []byte) {
	if value == nil {
		m.SetStringProperty(key, nil)
		return
	}
	m.SetString(key, base64.StdEncoding.EncodeToString(value))
}

// GetJSONProperty unmarshals the JSON value for key into v. Returns false
// when the key is absent or null.
func (m *Message) GetJSONProperty(key string, v any) bool {
	raw := m.GetStringProperty(key)
	if raw == nil {
		return false
	}
	return json.Unmarshal([]byte(*raw), v) == nil
}

// SetJSONProperty stores v under key as JSON. A nil v is stored as a null
// property.
func (m *Message) SetJSONProperty(key string, v any) error {
	if v == nil {
		m.SetStringProperty(key, nil)
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.SetString(key, string(data))
	return nil
}
