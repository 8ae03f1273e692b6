package todolist

import "github.com/ethereum/go-ethereum/accounts/abi/bind"

// TodoListMetaData contains the ABI of the TodoList contract consumed by this service.
var TodoListMetaData = &bind.MetaData{
	ABI: `[
	{"type":"function","name":"createTask","stateMutability":"payable","outputs":[],"inputs":[
		{"name":"_title","type":"string","internalType":"string"},
		{"name":"_description","type":"string","internalType":"string"},
		{"name":"_dueDate","type":"uint256","internalType":"uint256"},
		{"name":"_priority","type":"uint256","internalType":"uint256"},
		{"name":"_isCompleted","type":"bool","internalType":"bool"}]},
	{"type":"function","name":"completeTask","stateMutability":"nonpayable","outputs":[],"inputs":[
		{"name":"_taskId","type":"uint256","internalType":"uint256"}]},
	{"type":"function","name":"getTaskCount","stateMutability":"view","inputs":[],"outputs":[
		{"name":"","type":"uint256","internalType":"uint256"}]},
	{"type":"function","name":"tasks","stateMutability":"view","inputs":[
		{"name":"","type":"uint256","internalType":"uint256"}],"outputs":[
		{"name":"title","type":"string","internalType":"string"},
		{"name":"description","type":"string","internalType":"string"},
		{"name":"dueDate","type":"uint256","internalType":"uint256"},
		{"name":"priority","type":"uint256","internalType":"uint256"},
		{"name":"isCompleted","type":"bool","internalType":"bool"},
		{"name":"owner","type":"address","internalType":"address"}]},
	{"type":"event","name":"TaskCreated","anonymous":false,"inputs":[
		{"name":"id","type":"uint256","indexed":false,"internalType":"uint256"},
		{"name":"title","type":"string","indexed":false,"internalType":"string"},
		{"name":"description","type":"string","indexed":false,"internalType":"string"},
		{"name":"dueDate","type":"uint256","indexed":false,"internalType":"uint256"},
		{"name":"completed","type":"bool","indexed":false,"internalType":"bool"},
		{"name":"owner","type":"address","indexed":false,"internalType":"address"}]},
	{"type":"error","name":"AlreadyCompleted","inputs":[]},
	{"type":"error","name":"Unauthorized","inputs":[]}
]`,
}

// Contract method, event and error names.
const (
	MethodCreateTask   = "createTask"
	MethodCompleteTask = "completeTask"
	MethodGetTaskCount = "getTaskCount"
	MethodTasks        = "tasks"

	EventTaskCreated = "TaskCreated"

	ErrorAlreadyCompleted = "AlreadyCompleted"
	ErrorUnauthorized     = "Unauthorized"
)
