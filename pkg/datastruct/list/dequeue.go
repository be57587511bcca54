package list

// Dequeue 双端队列
type Dequeue interface {
	AddFirst(ele interface{}) error
	AddLast(ele interface{}) error
	RemoveFirst() (interface{}, error)
	RemoveLast() (interface{}, error)
	GetFirst() (interface{}, error)
	GetLast() (interface{}, error)
	// Get 获取index位置的数据
	Get(index int) (interface{}, error)
	// Len 获取长度
	Len() int
	// ForEach 遍历双端队列
	ForEach(func(value interface{}, index int) bool)
}

var _ Dequeue = &Linked{}

// Linked 用 List 实现的双端队列
type Linked struct {
	list *List[interface{}]
}

func NewLinked(opts ...Option[interface{}]) *Linked {
	return &Linked{
		list: New(opts...),
	}
}

func (l *Linked) AddFirst(ele interface{}) error {
	l.list.PushFront(ele)
	return nil
}

func (l *Linked) AddLast(ele interface{}) error {
	l.list.PushBack(ele)
	return nil
}

func (l *Linked) RemoveFirst() (ele interface{}, err error) {
	if ele, err = l.list.Front(); err != nil {
		return nil, err
	}
	l.list.PopFront()
	return
}

func (l *Linked) RemoveLast() (ele interface{}, err error) {
	if ele, err = l.list.Back(); err != nil {
		return nil, err
	}
	l.list.PopBack()
	return
}

func (l *Linked) GetFirst() (interface{}, error) {
	return l.list.Front()
}

func (l *Linked) GetLast() (interface{}, error) {
	return l.list.Back()
}

// Get 从离 index 较近的一端开始走
func (l *Linked) Get(index int) (interface{}, error) {
	size := l.list.Len()
	if index < 0 || index >= size {
		return nil, ErrorOutIndex
	}
	if index < size/2 {
		it := l.list.CBegin()
		for i := 0; i < index; i++ {
			it = it.Next()
		}
		return it.Value(), nil
	}
	it := l.list.CRBegin()
	for i := size - 1; i > index; i-- {
		it = it.Next()
	}
	return it.Value(), nil
}

func (l *Linked) Len() int {
	return l.list.Len()
}

func (l *Linked) ForEach(fun func(value interface{}, index int) bool) {
	i := 0
	for v := range l.list.All() {
		if !fun(v, i) {
			break
		}
		i++
	}
}
