package main

import (
	"fmt"

	"github.com/karlseguin/slist"
)

func main() {
	l := slist.New[string]()
	fmt.Println(l.Front())

	l.PushBack("abc")
	l.PushBack("def")
	l.PushFront("xyz")
	fmt.Println(l.Front())
	fmt.Println(l.Back())

	if v, err := l.At(1); err == nil {
		*v = "ABC"
		fmt.Println(*v)
	}

	fmt.Println(l.Erase(5))
	fmt.Println(slist.Remove(l, "xyz"), l.Size())

	l.Clear()
	fmt.Println(l.Empty(), l.PopBack())
}
