// internal/component/message.go
package component

// Message — временный баннер в центре экрана.
type Message struct {
	Text     string
	Duration float64
	Elapsed  float64
}

// MessageQueue — очередь баннеров. Виден и стареет только первый;
// каждый следующий ждёт полную длительность после того, как стал первым.
type MessageQueue struct {
	items []Message
}

// Push добавляет баннер в конец очереди.
func (q *MessageQueue) Push(text string, duration float64) {
	q.items = append(q.items, Message{Text: text, Duration: duration})
}

// Update старит голову очереди и снимает её по истечении срока.
func (q *MessageQueue) Update(dt float64) {
	if len(q.items) == 0 {
		return
	}
	q.items[0].Elapsed += dt
	if q.items[0].Elapsed >= q.items[0].Duration {
		q.items = q.items[1:]
	}
}

// Head возвращает видимый баннер.
func (q *MessageQueue) Head() (Message, bool) {
	if len(q.items) == 0 {
		return Message{}, false
	}
	return q.items[0], true
}

func (q *MessageQueue) Len() int {
	return len(q.items)
}

// Texts возвращает тексты всех баннеров в порядке очереди.
func (q *MessageQueue) Texts() []string {
	texts := make([]string, len(q.items))
	for i, m := range q.items {
		texts[i] = m.Text
	}
	return texts
}

func (q *MessageQueue) Clear() {
	q.items = nil
}
