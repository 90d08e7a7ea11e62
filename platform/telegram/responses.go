package telegram

// StaticResponses are the canned replies for lobby and informational
// commands. Anything game-specific comes from the engine instead.
var StaticResponses = map[string]string{
	"end_game":                       "The game has been terminated!",
	"end_game_id_missing_failure":    "You cannot end the game since you aren't playing!",
	"game_dne_failure":               "You cannot do this; a game does not currently exist!",
	"game_ongoing":                   "A game is currently being played! A new one cannot be started in this chat!",
	"game_pending":                   "A game is already pending! You can join with /join or leave with /leave.",
	"start_game_id_missing_failure":  "You cannot start the game since you aren't playing!",
	"start_game_min_threshold":       "There must be at least two players to start the game!",
	"start_game_not_pending":         "Cannot start a game that isn't pending!",
	"unexpected_error":               "Something has gone horribly wrong!",
	"invalid_nickname":               "That is not a valid nickname.",
	"join_game_not_pending":          "You cannot join; a game is not currently pending!",
	"leave_game":                     "You have left the game",
	"leave_game_not_pending_failure": "You cannot leave the game; there's no game pending!",
	"leave_id_missing_failure":       "You cannot leave the game; you aren't in it!",
	"listplayers_failure":            "A game has not been started, so there aren't any players to list!",

	"new_game": `A new game has been created for this chat and is currently pending.

/join [nickname] will let you join the game under a nickname or your username as a default.
/leave will remove you from the game.
/listplayers will list all players in the current game.
/endgame will end the current game.
/startgame will start the current game.`,

	"start": `Hello! This bot was made to let people play Monopoly in Telegram. In order to use me, you'll need to add me to a chat and have everyone who wishes to play directly message me.

Commands:

/newgame - Begins a new game of Monopoly.
/rules - Sends a message with the rules of Monopoly.
/help - Sends a message with additional commands and information.`,

	"rules": `Everyone starts on the space that says "Go".

Whenever you land on a space that no one owns, you can buy it from the bank. Once you own it, players who land there must pay you rent.

If you land on a Chance or a Community Chest card, you must do what it says.

If you roll doubles (the same number on both dice) you get to roll again.

When you pass "Go", you collect $200 from the bank (unless you have to go to jail).

There are three ways to get out of jail: roll a double within three turns, use a "Get Out of Jail Free" card, or pay a fine of $50.

Once you own all of one color, you can start to build houses. Once there are four houses on a property you can buy a hotel.

You can trade properties, "Get Out of Jail Free" cards, and money with other players.

If you cannot pay what you owe, you can declare bankruptcy; you are then done with the game.`,

	"help": `Here's a list of helpful commands:
/start will start the bot.
/rules will display a list of rules.
/feedback [text] will record feedback.
/newgame will begin a new game.
/startgame will start a game, if there are at least 2 players.
/listplayers will list all players in the current game.
/join [nickname] will add the sender to the game under an optional name.
/leave will remove the sender from the game, if a game is pending.
/endgame will end the current game, if it exists.
/blame will @ the current player's turn.
/roll will roll the dice to determine where you land.
/bankrupt [player_id or "bank"] will bankrupt you to that player.
/buyhouse [property_id] will purchase a house on that property.
/buyhotel [property_id] will purchase a hotel, if you have 4 houses.
/sellhouse [property_id] will sell a house on that property.
/sellhotel [property_id] will sell a hotel on that property.
/buyproperty will purchase the property at your position.
/endturn will end your turn.
/pay [player_id or "bank"] [amount] will pay the respective person or the bank.
/freeme will play a Get Out of Jail Free card if you have one.
/bail will pay your jail bail.
/money will show your current funds.
/mortgage [property_id] will mortgage your property with that ID.
/unmortgage [property_id] will pay back the mortgage on that property.
/setuptrade [player_id] will begin a trade between you and that player.
/addtrade [property_id or -1] [money] [num_cards] will add terms to the trade.
/removetrade [property_id or -1] [money] [num_cards] will remove terms.
/showtrade will reprint the terms of the pending trade.
/agree and /disagree will set your consent to the pending trade.
/trade will commence the pending trade if both players have agreed.
/canceltrade will cancel a pending trade.
/assets will send your current money, properties, and cards.
/aa will display everyone's assets in the chat.
/board will list the full board.`,
}
