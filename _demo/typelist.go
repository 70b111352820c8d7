package main

import (
	"fmt"
	"reflect"

	"github.com/jstrand/seqf"
)

// A runtime rendition of a compile-time type list: the slot type is
// reflect.Type, and the engines shuffle types around the way a
// metaprogramming library shuffles template arguments.

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func main() {
	list := seqf.Of(
		typeOf[bool](),
		typeOf[string](),
		typeOf[uint8](),
		typeOf[int16](),
		typeOf[uint16](),
	)
	fmt.Println("list:      ", list)

	list, _ = list.Replace(0, typeOf[int]())
	fmt.Println("replaced:  ", list)

	wider, _ := list.InsertAll(1, seqf.Of(typeOf[int64](), typeOf[uint64]()))
	fmt.Println("inserted:  ", wider)

	narrow, _ := wider.RemoveAll(seqf.Indices(0, 2, 4))
	fmt.Println("removed:   ", narrow)
}
