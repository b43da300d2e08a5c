package wordle

// Words is the answer list. Guesses are not checked against it.
var Words = [...]string{
	"REACT", "GAMES", "CHESS", "MUSIC", "DANCE", "BEACH", "PHONE", "LIGHT", "PLANT", "HORSE",
	"MAGIC", "BREAD", "CHAIR", "PIANO", "STONE", "CLOUD", "TIGER", "SMILE", "DREAM", "SHARK",
	"HOUSE", "WORLD", "BRAIN", "PEACE", "EAGLE", "SWORD", "ROYAL", "HAPPY", "QUICK", "FANCY",
	"PARTY", "GLORY", "OCEAN", "FROST", "BRAVE", "PEARL", "FLAME", "STORM", "CROWN", "FAITH",
}
