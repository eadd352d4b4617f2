package modules

// Person generates personal names and titles from the "person" module.
type Person struct {
	core Core
}

func NewPerson(core Core) *Person {
	return &Person{core: core}
}

func (p *Person) FirstName() (string, error) {
	return pick(p.core, "person", "first_name")
}

func (p *Person) LastName() (string, error) {
	return pick(p.core, "person", "last_name")
}

func (p *Person) Prefix() (string, error) {
	return pick(p.core, "person", "prefix")
}

func (p *Person) JobTitle() (string, error) {
	return pick(p.core, "person", "job_title")
}

// FullName returns "<first> <last>". The first name is always drawn first.
func (p *Person) FullName() (string, error) {
	first, err := p.FirstName()
	if err != nil {
		return "", err
	}
	last, err := p.LastName()
	if err != nil {
		return "", err
	}
	return first + " " + last, nil
}
