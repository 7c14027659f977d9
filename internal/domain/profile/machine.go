package profile

// Machine хранит черновик и сохраненную запись и переключает режимы редактирования и просмотра.
// Machine не выполняет ввод-вывод: сохранение в хранилище делает Service.
type Machine struct {
	mode      Mode
	draft     Draft
	committed Record
}

// NewMachine создает машину в режиме редактирования без сохраненного профиля.
func NewMachine() *Machine {
	return &Machine{mode: ModeEditing}
}

func (m *Machine) Mode() Mode {
	return m.mode
}

func (m *Machine) Draft() Draft {
	return m.draft
}

func (m *Machine) Committed() Record {
	return m.committed
}

func (m *Machine) View() View {
	return View{
		Mode:      m.mode,
		Committed: m.committed,
		Draft:     m.draft,
	}
}

// Restore применяет запись, прочитанную из хранилища.
func (m *Machine) Restore(rec Record) {
	m.committed = rec
	m.draft = Draft{}
	if rec.Exists() {
		m.mode = ModeViewing
	} else {
		m.mode = ModeEditing
	}
}

// Edit переводит в режим редактирования. Черновик не заполняется сохраненными значениями.
func (m *Machine) Edit() {
	if m.mode == ModeEditing {
		return
	}
	m.mode = ModeEditing
	m.draft = Draft{}
}

// Apply изменяет черновик, только в режиме редактирования.
func (m *Machine) Apply(p Patch) error {
	if m.mode != ModeEditing {
		return ErrNotEditing
	}
	d, err := p.apply(m.draft)
	if err != nil {
		return err
	}
	m.draft = d
	return nil
}

// PrepareSave возвращает черновик, готовый к записи. Состояние не меняется.
func (m *Machine) PrepareSave() (Draft, error) {
	if m.mode != ModeEditing {
		return Draft{}, ErrNotEditing
	}
	if err := m.draft.Validate(); err != nil {
		return Draft{}, err
	}
	return m.draft, nil
}

// Commit фиксирует успешно записанный черновик.
func (m *Machine) Commit(d Draft) {
	m.committed = d.committed(m.committed.Avatar)
	m.draft = Draft{}
	m.mode = ModeViewing
}

// Cancel отбрасывает черновик. Просматривать можно только существующий профиль.
func (m *Machine) Cancel() {
	m.draft = Draft{}
	if m.committed.Exists() {
		m.mode = ModeViewing
	}
}

// SetAvatar не зависит от режима.
func (m *Machine) SetAvatar(uri string) {
	m.committed.Avatar = strPtr(uri)
}

// Reset возвращает машину в начальное состояние после выхода.
func (m *Machine) Reset() {
	m.mode = ModeEditing
	m.draft = Draft{}
	m.committed = Record{}
}
