package bindings

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/crypto"
)

// DefaultGreeting is the greeting YourContract is deployed with.
const DefaultGreeting = "Building Unstoppable Apps!!!"

// Storage layout. The greeting is stored as its byte length followed by its 32 byte words,
// which occupy every slot from greetingDataSlot upwards.
const (
	ownerSlot        = 0
	totalCounterSlot = 1
	premiumSlot      = 2
	greetingLenSlot  = 3
	greetingDataSlot = 4
)

const greetingChangeSignature = "GreetingChange(address,string,bool,uint256)"

func selector(signature string) []byte {
	return crypto.Keccak256([]byte(signature))[:4]
}

// yourContractRuntime builds the deployed code of YourContract.
func yourContractRuntime() *program {
	p := newProgram()

	// Plain ether transfers are accepted.
	p.op(vm.CALLDATASIZE, vm.ISZERO).pushLabel("receive", 0).op(vm.JUMPI)

	p.push(0).op(vm.CALLDATALOAD).push(0xe0).op(vm.SHR)
	for _, m := range []struct {
		signature string
		label     string
	}{
		{"greeting()", "greeting"},
		{"setGreeting(string)", "setGreeting"},
		{"owner()", "owner"},
		{"premium()", "premium"},
		{"totalCounter()", "totalCounter"},
		{"withdraw()", "withdraw"},
	} {
		p.op(vm.DUP1).pushBytes(selector(m.signature)).op(vm.EQ).pushLabel(m.label, 0).op(vm.JUMPI)
	}
	p.push(0).op(vm.DUP1, vm.REVERT)

	p.jumpdest("receive").op(vm.STOP)

	returnSlot(p, "owner", ownerSlot)
	returnSlot(p, "premium", premiumSlot)
	returnSlot(p, "totalCounter", totalCounterSlot)

	// greeting() returns abi.encode(string): offset, length, then the stored words.
	p.jumpdest("greeting")
	p.push(0x20).push(0).op(vm.MSTORE)
	p.push(greetingLenSlot).op(vm.SLOAD)                // len
	p.op(vm.DUP1).push(0x20).op(vm.MSTORE)             // len
	p.push(0x1f).op(vm.ADD).push(5).op(vm.SHR).push(0) // words i
	p.jumpdest("greetingLoop")
	p.op(vm.DUP2, vm.DUP2, vm.LT, vm.ISZERO).pushLabel("greetingDone", 0).op(vm.JUMPI)
	p.op(vm.DUP1).push(greetingDataSlot).op(vm.ADD, vm.SLOAD)      // words i word
	p.op(vm.DUP2).push(5).op(vm.SHL).push(0x40).op(vm.ADD, vm.MSTORE) // words i
	p.push(1).op(vm.ADD).pushLabel("greetingLoop", 0).op(vm.JUMP)
	p.jumpdest("greetingDone")
	p.op(vm.POP).push(5).op(vm.SHL).push(0x40).op(vm.ADD)
	p.push(0).op(vm.RETURN)

	// setGreeting(string) copies the calldata string words into storage.
	p.jumpdest("setGreeting")
	p.push(4).op(vm.CALLDATALOAD).push(4).op(vm.ADD)   // p
	p.op(vm.DUP1, vm.CALLDATALOAD)                      // p len
	p.op(vm.DUP1).push(greetingLenSlot).op(vm.SSTORE)  // p len
	p.push(0x1f).op(vm.ADD).push(5).op(vm.SHR).push(0) // p words i
	p.jumpdest("setLoop")
	p.op(vm.DUP2, vm.DUP2, vm.LT, vm.ISZERO).pushLabel("setDone", 0).op(vm.JUMPI)
	p.op(vm.DUP1).push(5).op(vm.SHL, vm.DUP4, vm.ADD).push(0x20).op(vm.ADD, vm.CALLDATALOAD) // p words i word
	p.op(vm.DUP2).push(greetingDataSlot).op(vm.ADD, vm.SSTORE)                             // p words i
	p.push(1).op(vm.ADD).pushLabel("setLoop", 0).op(vm.JUMP)
	p.jumpdest("setDone")
	p.op(vm.POP) // p words
	p.op(vm.CALLVALUE, vm.ISZERO, vm.ISZERO).push(premiumSlot).op(vm.SSTORE)
	p.push(totalCounterSlot).op(vm.SLOAD).push(1).op(vm.ADD).push(totalCounterSlot).op(vm.SSTORE)

	// emit GreetingChange(msg.sender, greeting, msg.value > 0, msg.value)
	p.push(0x60).push(0).op(vm.MSTORE)
	p.op(vm.CALLVALUE, vm.ISZERO, vm.ISZERO).push(0x20).op(vm.MSTORE)
	p.op(vm.CALLVALUE).push(0x40).op(vm.MSTORE)
	p.op(vm.DUP2, vm.CALLDATALOAD).push(0x60).op(vm.MSTORE)
	p.op(vm.DUP1).push(5).op(vm.SHL)                                            // p words size
	p.op(vm.DUP1, vm.DUP4).push(0x20).op(vm.ADD).push(0x80).op(vm.CALLDATACOPY) // p words size
	p.push(0x80).op(vm.ADD)                                                     // p words total
	p.op(vm.CALLER).pushBytes(crypto.Keccak256([]byte(greetingChangeSignature)))
	p.op(vm.DUP3).push(0).op(vm.LOG2, vm.STOP)

	// withdraw() sends the whole balance to the owner and may only be called by the owner.
	p.jumpdest("withdraw")
	p.push(ownerSlot).op(vm.SLOAD, vm.CALLER, vm.EQ).pushLabel("withdrawAuthorized", 0).op(vm.JUMPI)
	p.push(0).op(vm.DUP1, vm.REVERT)
	p.jumpdest("withdrawAuthorized")
	p.push(0).op(vm.DUP1, vm.DUP1, vm.DUP1, vm.SELFBALANCE).push(ownerSlot).op(vm.SLOAD, vm.GAS, vm.CALL)
	p.pushLabel("withdrawDone", 0).op(vm.JUMPI)
	p.push(0).op(vm.DUP1, vm.REVERT)
	p.jumpdest("withdrawDone").op(vm.STOP)

	return p
}

func returnSlot(p *program, label string, slot uint64) {
	p.jumpdest(label)
	p.push(slot).op(vm.SLOAD).push(0).op(vm.MSTORE)
	p.push(0x20).push(0).op(vm.RETURN)
}

// yourContractInit builds the creation code for runtime. When a constructor argument is
// appended to the creation code it is the owner, otherwise the deployer is.
func yourContractInit(runtime []byte, greeting string) *program {
	p := newProgram()

	p.op(vm.CODESIZE).pushLabel("runtime", len(runtime)).op(vm.LT).pushLabel("ownerArg", 0).op(vm.JUMPI)
	p.op(vm.CALLER).push(ownerSlot).op(vm.SSTORE).pushLabel("ownerSet", 0).op(vm.JUMP)
	p.jumpdest("ownerArg")
	p.push(0x20).pushLabel("runtime", len(runtime)).push(0).op(vm.CODECOPY)
	p.push(0).op(vm.MLOAD).push(ownerSlot).op(vm.SSTORE)
	p.jumpdest("ownerSet")

	data := []byte(greeting)
	p.push(uint64(len(data))).push(greetingLenSlot).op(vm.SSTORE)
	for i := 0; i*32 < len(data); i++ {
		var word [32]byte
		copy(word[:], data[i*32:])
		p.pushBytes(word[:]).push(uint64(greetingDataSlot + i)).op(vm.SSTORE)
	}

	p.push(uint64(len(runtime))).op(vm.DUP1).pushLabel("runtime", 0).push(0).op(vm.CODECOPY)
	p.push(0).op(vm.RETURN)
	p.mark("runtime")

	return p
}

func mustAssembleYourContract() string {
	runtime, err := yourContractRuntime().assemble()
	if err != nil {
		panic(err)
	}

	initCode, err := yourContractInit(runtime, DefaultGreeting).assemble()
	if err != nil {
		panic(err)
	}

	return hexutil.Encode(append(initCode, runtime...))
}
