package protocol

// Menu lists the available commands. It ends with the prompt and no newline.
const Menu = `
Available Commands:
    1) Accumulate (1st technique).
    2) Accumulate (2nd technique).
    3) Accumulate (3rd technique).
    4) Perform a memory trim.
    5) Clear the accumulator.
    6) Reset the accumulator.
    7) Change the insertion amount.
    0) Exit.
Choice: `
